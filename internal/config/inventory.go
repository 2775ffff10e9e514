package config

import (
	"fmt"
	"os"

	"github.com/IXIIIK/meteorit-bot/internal/domain"
	"gopkg.in/yaml.v3"
)

// InventoryFile is the on-disk table layout. A class either names its tables
// or only gives a count, in which case ids are generated.
type InventoryFile struct {
	Classes []InventoryClass `yaml:"classes"`
}

type InventoryClass struct {
	Capacity int      `yaml:"capacity"`
	Tables   []string `yaml:"tables"`
	Count    int      `yaml:"count"`
}

// DefaultInventory is the hall of «Метеорит».
func DefaultInventory() []domain.TableClass {
	return []domain.TableClass{
		{Capacity: 2, Tables: []string{"23"}},
		{Capacity: 3, Tables: []string{"17", "18", "19", "20", "22"}},
		{Capacity: 5, Tables: []string{"16"}},
		{Capacity: 8, Tables: []string{"13"}},
	}
}

func LoadInventory(path string) (*domain.Inventory, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read inventory %s: %w", path, err)
	}
	return ParseInventory(raw)
}

func ParseInventory(raw []byte) (*domain.Inventory, error) {
	var file InventoryFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("%w: parse inventory: %v", domain.ErrValidation, err)
	}

	classes := make([]domain.TableClass, 0, len(file.Classes))
	for _, c := range file.Classes {
		tables := c.Tables
		if len(tables) == 0 && c.Count > 0 {
			tables = domain.AnonymousTables(c.Capacity, c.Count)
		}
		classes = append(classes, domain.TableClass{Capacity: c.Capacity, Tables: tables})
	}

	return domain.NewInventory(classes)
}
