package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/caffeinepub/livspan-wellness-and-longevity-application/models"
	"github.com/caffeinepub/livspan-wellness-and-longevity-application/repository"
	"github.com/caffeinepub/livspan-wellness-and-longevity-application/services"
	"github.com/caffeinepub/livspan-wellness-and-longevity-application/utils"
)

// APIHandler holds all dependencies for API handlers, such as repositories and services.
type APIHandler struct {
	profileService services.ProfileService
	routineService services.RoutineService
	scoreService   services.ScoreService
	tokenService   services.TokenService
	coachService   services.CoachService
	supplementRepo repository.SupplementRepository
	journalRepo    repository.JournalRepository
	db             *gorm.DB
}

// NewAPIHandler creates a new APIHandler with necessary dependencies.
func NewAPIHandler(
	profileService services.ProfileService,
	routineService services.RoutineService,
	scoreService services.ScoreService,
	tokenService services.TokenService,
	coachService services.CoachService,
	supplementRepo repository.SupplementRepository,
	journalRepo repository.JournalRepository,
	db *gorm.DB,
) *APIHandler {
	return &APIHandler{
		profileService: profileService,
		routineService: routineService,
		scoreService:   scoreService,
		tokenService:   tokenService,
		coachService:   coachService,
		supplementRepo: supplementRepo,
		journalRepo:    journalRepo,
		db:             db,
	}
}

// GetProfileHandler returns the stored profile plus derived score references.
func (h *APIHandler) GetProfileHandler(c *gin.Context) {
	userID := c.Param("userID")
	resp, err := h.profileService.GetProfile(userID)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to load profile.", err)
		return
	}
	if resp == nil {
		utils.SendJSONError(c, http.StatusNotFound, "Profile not found. Complete profile setup first.", nil)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SaveProfileHandler creates or updates the user's profile.
func (h *APIHandler) SaveProfileHandler(c *gin.Context) {
	var profile models.UserProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}

	resp, err := h.profileService.SaveProfile(&profile)
	if err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, err.Error(), err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// CompleteRoutineHandler scores and persists the day's routine and credits
// the routine reward. A second submission for the same day is a conflict.
func (h *APIHandler) CompleteRoutineHandler(c *gin.Context) {
	var req models.CompleteRoutineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}

	resp, err := h.routineService.CompleteRoutine(req)
	if err != nil {
		if errors.Is(err, repository.ErrRoutineAlreadyCompleted) {
			utils.SendJSONError(c, http.StatusConflict, "Routine already completed today.", err)
			return
		}
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to complete routine.", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetRoutineHistoryHandler returns recent routine days, oldest to newest.
func (h *APIHandler) GetRoutineHistoryHandler(c *gin.Context) {
	userID := c.Param("userID")
	limit := 7
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.SendJSONError(c, http.StatusBadRequest, "Invalid limit parameter.", err)
			return
		}
		limit = parsed
	}

	days, err := h.routineService.GetHistory(userID, limit)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to load routine history.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"routines": days})
}

// PreviewScoresHandler runs the full scoring pipeline without persisting.
type previewScoresRequest struct {
	UserID  string              `json:"user_id" binding:"required"`
	Metrics models.DailyMetrics `json:"metrics"`
}

func (h *APIHandler) PreviewScoresHandler(c *gin.Context) {
	var req previewScoresRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}

	report, err := h.scoreService.PreviewScores(req.UserID, req.Metrics)
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to compute scores.", err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// CreateSupplementHandler adds a supplement to the user's checklist.
func (h *APIHandler) CreateSupplementHandler(c *gin.Context) {
	var entry models.SupplementEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}

	if err := h.supplementRepo.CreateSupplement(&entry); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to create supplement.", err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// GetSupplementsHandler lists the user's supplements.
func (h *APIHandler) GetSupplementsHandler(c *gin.Context) {
	entries, err := h.supplementRepo.GetSupplementsByUserID(c.Param("userID"))
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to load supplements.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"supplements": entries})
}

// MarkSupplementTakenHandler records today's adherence for one supplement.
func (h *APIHandler) MarkSupplementTakenHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid supplement ID.", err)
		return
	}

	entry, err := h.supplementRepo.MarkTaken(uint(id), utils.Today())
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to update supplement.", err)
		return
	}
	if entry == nil {
		utils.SendJSONError(c, http.StatusNotFound, "Supplement not found.", nil)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// DeleteSupplementHandler removes a supplement from the checklist.
func (h *APIHandler) DeleteSupplementHandler(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid supplement ID.", err)
		return
	}

	if err := h.supplementRepo.DeleteSupplement(uint(id)); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to delete supplement.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}

// CreateJournalEntryHandler stores a dated journal entry.
func (h *APIHandler) CreateJournalEntryHandler(c *gin.Context) {
	var entry models.JournalEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		utils.SendJSONError(c, http.StatusBadRequest, "Invalid request format.", err)
		return
	}
	if entry.Date == "" {
		entry.Date = utils.Today()
	}

	if err := h.journalRepo.CreateEntry(&entry); err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to create journal entry.", err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// GetJournalEntriesHandler lists a user's journal entries, optionally
// filtered to one day.
func (h *APIHandler) GetJournalEntriesHandler(c *gin.Context) {
	userID := c.Param("userID")
	date := c.Query("date")

	var (
		entries []*models.JournalEntry
		err     error
	)
	if date != "" {
		entries, err = h.journalRepo.GetEntriesByDate(userID, date)
	} else {
		entries, err = h.journalRepo.GetEntriesByUserID(userID)
	}
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to load journal entries.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// GetWalletHandler returns the user's LIV token balance and ledger.
func (h *APIHandler) GetWalletHandler(c *gin.Context) {
	wallet, err := h.tokenService.GetWallet(c.Param("userID"))
	if err != nil {
		utils.SendJSONError(c, http.StatusInternalServerError, "Failed to load wallet.", err)
		return
	}
	c.JSON(http.StatusOK, wallet)
}
