package api

import (
	"net/http"

	"github.com/KirkDiggler/tavern/internal/models"
	"github.com/KirkDiggler/tavern/internal/rules"
	"github.com/KirkDiggler/tavern/internal/services/character"
	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

type CreateCharacterRequest struct {
	Name       string                `json:"name" binding:"required"`
	Class      models.CharacterClass `json:"class" binding:"required"`
	Race       models.CharacterRace  `json:"race" binding:"required"`
	Background string                `json:"background"`

	// AbilityScores are base scores before racial bonuses
	AbilityScores *models.AbilityScores `json:"ability_scores"`

	Skills map[string]int `json:"skills"`
	Spells []string       `json:"spells"`
}

type UpdateCharacterRequest struct {
	Name       *string        `json:"name"`
	Background *string        `json:"background"`
	Skills     map[string]int `json:"skills"`
	Spells     []string       `json:"spells"`
}

type AmountRequest struct {
	Amount int `json:"amount"`
}

type RestRequest struct {
	RestType rules.RestType `json:"rest_type" binding:"required"`
}

// CharacterResult pairs the updated character with what the rule did
type CharacterResult struct {
	Character *models.Character `json:"character"`
	Result    any               `json:"result,omitempty"`
}

type ExperienceResponse struct {
	Character  *models.Character `json:"character"`
	CanLevelUp bool              `json:"can_level_up"`
}

type ItemResponse struct {
	Character *models.Character `json:"character"`
	Item      *models.Item      `json:"item"`
}

// endregion

func (h *Handler) CreateCharacter(c *gin.Context) {
	var req CreateCharacterRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.characters.CreateCharacter(c.Request.Context(), &character.CreateCharacterInput{
		UserID:        UserID(c),
		Name:          req.Name,
		Class:         req.Class,
		Race:          req.Race,
		Background:    req.Background,
		AbilityScores: req.AbilityScores,
		Skills:        req.Skills,
		Spells:        req.Spells,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, out.Character)
}

func (h *Handler) ListCharacters(c *gin.Context) {
	out, err := h.characters.ListCharacters(c.Request.Context(), &character.ListCharactersInput{UserID: UserID(c)})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, out.Characters)
}

func (h *Handler) GetCharacter(c *gin.Context) {
	out, err := h.characters.GetCharacter(c.Request.Context(), &character.GetCharacterInput{
		UserID:      UserID(c),
		CharacterID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, out.Character)
}

func (h *Handler) UpdateCharacter(c *gin.Context) {
	var req UpdateCharacterRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.characters.UpdateCharacter(c.Request.Context(), &character.UpdateCharacterInput{
		UserID:      UserID(c),
		CharacterID: c.Param("id"),
		Name:        req.Name,
		Background:  req.Background,
		Skills:      req.Skills,
		Spells:      req.Spells,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, out.Character)
}

func (h *Handler) DeleteCharacter(c *gin.Context) {
	err := h.characters.DeleteCharacter(c.Request.Context(), &character.DeleteCharacterInput{
		UserID:      UserID(c),
		CharacterID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) LevelUp(c *gin.Context) {
	out, err := h.characters.LevelUp(c.Request.Context(), &character.LevelUpInput{
		UserID:      UserID(c),
		CharacterID: c.Param("id"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, CharacterResult{Character: out.Character, Result: out.Result})
}

func (h *Handler) AwardExperience(c *gin.Context) {
	var req AmountRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.characters.AwardExperience(c.Request.Context(), &character.AwardExperienceInput{
		UserID:      UserID(c),
		CharacterID: c.Param("id"),
		Amount:      req.Amount,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, ExperienceResponse{Character: out.Character, CanLevelUp: out.CanLevelUp})
}

func (h *Handler) Rest(c *gin.Context) {
	var req RestRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.characters.Rest(c.Request.Context(), &character.RestInput{
		UserID:      UserID(c),
		CharacterID: c.Param("id"),
		RestType:    req.RestType,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, CharacterResult{Character: out.Character, Result: out.Result})
}

func (h *Handler) Heal(c *gin.Context) {
	var req AmountRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.characters.Heal(c.Request.Context(), &character.HealInput{
		UserID:      UserID(c),
		CharacterID: c.Param("id"),
		Amount:      req.Amount,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, CharacterResult{Character: out.Character, Result: out.Result})
}

func (h *Handler) TakeDamage(c *gin.Context) {
	var req AmountRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.characters.TakeDamage(c.Request.Context(), &character.TakeDamageInput{
		UserID:      UserID(c),
		CharacterID: c.Param("id"),
		Amount:      req.Amount,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, CharacterResult{Character: out.Character, Result: out.Result})
}

func (h *Handler) GrantTemporaryHP(c *gin.Context) {
	var req AmountRequest
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.characters.GrantTemporaryHP(c.Request.Context(), &character.GrantTemporaryHPInput{
		UserID:      UserID(c),
		CharacterID: c.Param("id"),
		Amount:      req.Amount,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, CharacterResult{Character: out.Character})
}

func (h *Handler) AddItem(c *gin.Context) {
	var req rules.ItemInput
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.characters.AddItem(c.Request.Context(), &character.AddItemInput{
		UserID:      UserID(c),
		CharacterID: c.Param("id"),
		Item:        req,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusCreated, ItemResponse{Character: out.Character, Item: out.Item})
}

func (h *Handler) UpdateItem(c *gin.Context) {
	var req rules.ItemPatch
	if !bindJSON(c, &req) {
		return
	}

	out, err := h.characters.UpdateItem(c.Request.Context(), &character.UpdateItemInput{
		UserID:      UserID(c),
		CharacterID: c.Param("id"),
		ItemID:      c.Param("itemId"),
		Patch:       req,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, ItemResponse{Character: out.Character, Item: out.Item})
}

func (h *Handler) RemoveItem(c *gin.Context) {
	out, err := h.characters.RemoveItem(c.Request.Context(), &character.RemoveItemInput{
		UserID:      UserID(c),
		CharacterID: c.Param("id"),
		ItemID:      c.Param("itemId"),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	respond(c, http.StatusOK, ItemResponse{Character: out.Character, Item: out.Item})
}
