package seeders

import (
	"log"

	"gorm.io/gorm"

	"guesthouse-booking/models/room"
)

func SeedRooms(db *gorm.DB) {
	log.Printf("🔍 Checking room data integrity...")

	rooms := []room.Room{
		{Name: "Carmel", Capacity: "2 Adults + 1 Kid", LowPrice: 3000, HighPrice: 3600, Features: room.StringSlice{"Hill view", "Queen bed", "Hot water"}},
		{Name: "Hermon", Capacity: "2 Adults", LowPrice: 2800, HighPrice: 3400, Features: room.StringSlice{"Garden view", "Queen bed"}},
		{Name: "Tabor Family Room", Capacity: "4 Adults + 1 Kid", LowPrice: 4500, HighPrice: 5400, Features: room.StringSlice{"Two double beds", "Balcony", "Hot water"}},
		{Name: "Olive Dormitory", Capacity: "6 Adults", LowPrice: 5000, HighPrice: 6000, Features: room.StringSlice{"Six single beds", "Shared veranda"}},
	}

	for _, r := range rooms {
		var existing room.Room
		err := db.Where("name = ?", r.Name).First(&existing).Error
		if err == gorm.ErrRecordNotFound {
			if err := db.Create(&r).Error; err != nil {
				log.Printf("❌ Failed to seed room %s: %v", r.Name, err)
			} else {
				log.Printf("✅ Seeded room %s", r.Name)
			}
		} else if err != nil {
			log.Printf("❌ Failed to check room %s: %v", r.Name, err)
		}
	}
}
