// Bulk achievement catalog importer. Reads a JSON array of catalog
// entries and upserts them by name, validating each one with the same
// rules the live engine applies.
//
// Usage: catalog-importer [path/to/achievements.json]
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"ideahub/database"
	"ideahub/gamification"
	"ideahub/models"

	"github.com/joho/godotenv"
)

type importEntry struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Icon        string         `json:"icon"`
	Rarity      string         `json:"rarity"`
	Points      int            `json:"points"`
	Conditions  map[string]int `json:"conditions"`
}

func main() {
	_ = godotenv.Load()

	path := "./achievements.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal("Failed to read catalog file:", err)
	}

	var entries []importEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		log.Fatal("Failed to parse catalog JSON:", err)
	}
	fmt.Printf("Found %d catalog entries\n\n", len(entries))

	database.InitDB()
	db := database.GetDB()

	imported, updated, skipped := 0, 0, 0
	for _, e := range entries {
		conditions := e.Conditions
		if conditions == nil {
			conditions = map[string]int{}
		}
		def := gamification.Definition{
			Name:        e.Name,
			Description: e.Description,
			Icon:        e.Icon,
			Rarity:      e.Rarity,
			Points:      e.Points,
			Conditions:  conditions,
		}
		if err := gamification.ValidateDefinition(def); err != nil {
			fmt.Printf("⚠️ Skipping %q: %v\n", e.Name, err)
			skipped++
			continue
		}

		conditionsJSON, _ := json.Marshal(conditions)
		row := models.Achievement{
			Name:        e.Name,
			Description: e.Description,
			Icon:        e.Icon,
			Rarity:      e.Rarity,
			Points:      e.Points,
			Conditions:  string(conditionsJSON),
		}

		var existing models.Achievement
		if err := db.Where("name = ?", e.Name).First(&existing).Error; err == nil {
			if err := db.Model(&existing).Updates(map[string]interface{}{
				"description": row.Description,
				"icon":        row.Icon,
				"rarity":      row.Rarity,
				"points":      row.Points,
				"conditions":  row.Conditions,
			}).Error; err != nil {
				fmt.Printf("⚠️ Failed to update %q: %v\n", e.Name, err)
				skipped++
				continue
			}
			updated++
			continue
		}

		if err := db.Create(&row).Error; err != nil {
			fmt.Printf("⚠️ Failed to insert %q: %v\n", e.Name, err)
			skipped++
			continue
		}
		imported++
	}

	fmt.Printf("\n✅ Done: %d inserted, %d updated, %d skipped\n", imported, updated, skipped)
}
