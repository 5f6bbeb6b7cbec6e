package rules

import (
	"strings"

	"github.com/KirkDiggler/tavern/internal/models"
)

const defaultRarity = "common"

type ItemInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Type        string `json:"type"`
	// Quantity defaults to 1 when zero
	Quantity int     `json:"quantity"`
	Weight   float64 `json:"weight"`
	Value    int     `json:"value"`
	// Rarity defaults to "common"
	Rarity   string `json:"rarity"`
	Equipped bool   `json:"equipped"`
}

// ItemPatch updates only the non-nil fields
type ItemPatch struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Type        *string  `json:"type"`
	Quantity    *int     `json:"quantity"`
	Weight      *float64 `json:"weight"`
	Value       *int     `json:"value"`
	Rarity      *string  `json:"rarity"`
	Equipped    *bool    `json:"equipped"`
}

// AddItem appends a new item with id to c's inventory
func AddItem(c *models.Character, id string, input *ItemInput) (*models.Item, error) {
	if c == nil {
		return nil, ErrNilCharacter
	}
	if input == nil {
		return nil, ErrInvalidItem
	}

	item := &models.Item{
		ID:          id,
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Type:        input.Type,
		Quantity:    input.Quantity,
		Weight:      input.Weight,
		Value:       input.Value,
		Rarity:      input.Rarity,
		Equipped:    input.Equipped,
	}
	if item.Quantity == 0 {
		item.Quantity = 1
	}
	if item.Rarity == "" {
		item.Rarity = defaultRarity
	}
	if err := validateItem(item); err != nil {
		return nil, err
	}

	c.Inventory = append(c.Inventory, item)
	return item, nil
}

// UpdateItem applies patch to the item with itemID
func UpdateItem(c *models.Character, itemID string, patch *ItemPatch) (*models.Item, error) {
	if c == nil {
		return nil, ErrNilCharacter
	}
	idx := c.FindItem(itemID)
	if idx < 0 {
		return nil, ErrItemNotFound
	}
	if patch == nil {
		return c.Inventory[idx], nil
	}

	// validate a copy so a bad patch leaves the item untouched
	updated := *c.Inventory[idx]
	if patch.Name != nil {
		updated.Name = strings.TrimSpace(*patch.Name)
	}
	if patch.Description != nil {
		updated.Description = *patch.Description
	}
	if patch.Type != nil {
		updated.Type = *patch.Type
	}
	if patch.Quantity != nil {
		updated.Quantity = *patch.Quantity
	}
	if patch.Weight != nil {
		updated.Weight = *patch.Weight
	}
	if patch.Value != nil {
		updated.Value = *patch.Value
	}
	if patch.Rarity != nil {
		updated.Rarity = *patch.Rarity
	}
	if patch.Equipped != nil {
		updated.Equipped = *patch.Equipped
	}
	if err := validateItem(&updated); err != nil {
		return nil, err
	}

	c.Inventory[idx] = &updated
	return &updated, nil
}

// RemoveItem deletes the item with itemID and returns it
func RemoveItem(c *models.Character, itemID string) (*models.Item, error) {
	if c == nil {
		return nil, ErrNilCharacter
	}
	idx := c.FindItem(itemID)
	if idx < 0 {
		return nil, ErrItemNotFound
	}

	removed := c.Inventory[idx]
	c.Inventory = append(c.Inventory[:idx], c.Inventory[idx+1:]...)
	return removed, nil
}

// CarriedWeight sums weight times quantity over the inventory
func CarriedWeight(c *models.Character) float64 {
	var total float64
	for _, item := range c.Inventory {
		total += item.Weight * float64(item.Quantity)
	}
	return total
}

func validateItem(item *models.Item) error {
	if item.Name == "" || item.Quantity < 1 || item.Weight < 0 || item.Value < 0 {
		return ErrInvalidItem
	}
	return nil
}
