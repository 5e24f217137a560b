package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/caffeinepub/livspan-wellness-and-longevity-application/models"
	"github.com/caffeinepub/livspan-wellness-and-longevity-application/repository"
)

// MockProfileRepository is a mock type for the ProfileRepository interface
type MockProfileRepository struct {
	mock.Mock
}

func (m *MockProfileRepository) GetProfileByUserID(userID string) (*models.UserProfile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func (m *MockProfileRepository) UpsertProfile(profile *models.UserProfile) (*models.UserProfile, error) {
	args := m.Called(profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

// MockRoutineRepository is a mock type for the RoutineRepository interface
type MockRoutineRepository struct {
	mock.Mock
}

func (m *MockRoutineRepository) CreateRoutineDay(day *models.RoutineDay) error {
	args := m.Called(day)
	return args.Error(0)
}

func (m *MockRoutineRepository) GetRoutineDay(userID, date string) (*models.RoutineDay, error) {
	args := m.Called(userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.RoutineDay), args.Error(1)
}

func (m *MockRoutineRepository) GetRecentRoutineDays(userID string, limit int) ([]*models.RoutineDay, error) {
	args := m.Called(userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.RoutineDay), args.Error(1)
}

// MockTokenService is a mock type for the TokenService interface
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GetWallet(userID string) (*models.TokenWallet, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.TokenWallet), args.Error(1)
}

func (m *MockTokenService) AwardRoutineReward(userID, date string, amount int64) error {
	args := m.Called(userID, date, amount)
	return args.Error(0)
}

// --- Test Helper Functions ---
func testProfile(userID string) *models.UserProfile {
	return &models.UserProfile{
		UserID:       userID,
		Name:         "Test User",
		Gender:       models.GenderMale,
		BirthYear:    1986,
		BodyHeightCm: 180,
		BodyWeightKg: 80,
	}
}

func testMetrics() models.DailyMetrics {
	return models.DailyMetrics{
		FastingHours: 18,
		TrainingSessions: []models.TrainingSession{
			{DurationMinutes: 60, Intensity: models.IntensityMedium},
		},
		SleepDurationHours: 8,
		SleepQuality:       8,
		Systolic:           115,
		Diastolic:          75,
		Pulse:              58,
		ProteinIntakeGrams: 120,
		ProteinTargetGrams: 150,
		VeggieIntakeGrams:  400,
		WaterIntakeLiters:  2.5,
		BodyFatPercent:     18,
		MuscleMassKg:       40,
	}
}

// --- Tests for CompleteRoutine ---
func TestRoutineService_CompleteRoutine(t *testing.T) {
	userID := "testUser"
	date := "2026-08-28"

	t.Run("Scenario 1: Happy path persists scores and awards tokens", func(t *testing.T) {
		mockProfileRepo := new(MockProfileRepository)
		mockRoutineRepo := new(MockRoutineRepository)
		mockTokens := new(MockTokenService)
		svc := NewRoutineService(mockProfileRepo, mockRoutineRepo, mockTokens, 10)

		mockProfileRepo.On("GetProfileByUserID", userID).Return(testProfile(userID), nil).Once()
		mockRoutineRepo.On("CreateRoutineDay", mock.AnythingOfType("*models.RoutineDay")).Return(nil).Once()
		mockTokens.On("AwardRoutineReward", userID, date, int64(10)).Return(nil).Once()

		resp, err := svc.CompleteRoutine(models.CompleteRoutineRequest{
			UserID:  userID,
			Date:    date,
			Metrics: testMetrics(),
		})

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Equal(t, int64(10), resp.TokensEarned)
		assert.Equal(t, 77, resp.Routine.Autophagy.TotalScore)
		assert.Equal(t, 77, resp.Routine.Longevity.TotalScore)
		assert.Equal(t, models.GenderMale, resp.Routine.Metrics.Gender)
		mockProfileRepo.AssertExpectations(t)
		mockRoutineRepo.AssertExpectations(t)
		mockTokens.AssertExpectations(t)
	})

	t.Run("Scenario 2: Duplicate day is rejected before tokens move", func(t *testing.T) {
		mockProfileRepo := new(MockProfileRepository)
		mockRoutineRepo := new(MockRoutineRepository)
		mockTokens := new(MockTokenService)
		svc := NewRoutineService(mockProfileRepo, mockRoutineRepo, mockTokens, 10)

		mockProfileRepo.On("GetProfileByUserID", userID).Return(testProfile(userID), nil).Once()
		mockRoutineRepo.On("CreateRoutineDay", mock.AnythingOfType("*models.RoutineDay")).
			Return(repository.ErrRoutineAlreadyCompleted).Once()

		resp, err := svc.CompleteRoutine(models.CompleteRoutineRequest{
			UserID:  userID,
			Date:    date,
			Metrics: testMetrics(),
		})

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, repository.ErrRoutineAlreadyCompleted)
		mockTokens.AssertNotCalled(t, "AwardRoutineReward", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Scenario 3: Missing profile fails fast", func(t *testing.T) {
		mockProfileRepo := new(MockProfileRepository)
		mockRoutineRepo := new(MockRoutineRepository)
		mockTokens := new(MockTokenService)
		svc := NewRoutineService(mockProfileRepo, mockRoutineRepo, mockTokens, 10)

		mockProfileRepo.On("GetProfileByUserID", userID).Return(nil, nil).Once()

		resp, err := svc.CompleteRoutine(models.CompleteRoutineRequest{
			UserID:  userID,
			Date:    date,
			Metrics: testMetrics(),
		})

		assert.Nil(t, resp)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no profile found")
		mockRoutineRepo.AssertNotCalled(t, "CreateRoutineDay", mock.Anything)
	})

	t.Run("Scenario 4: Protein target is derived from the profile when absent", func(t *testing.T) {
		mockProfileRepo := new(MockProfileRepository)
		mockRoutineRepo := new(MockRoutineRepository)
		mockTokens := new(MockTokenService)
		svc := NewRoutineService(mockProfileRepo, mockRoutineRepo, mockTokens, 10)

		metrics := testMetrics()
		metrics.ProteinTargetGrams = 0

		mockProfileRepo.On("GetProfileByUserID", userID).Return(testProfile(userID), nil).Once()
		mockRoutineRepo.On("CreateRoutineDay", mock.MatchedBy(func(day *models.RoutineDay) bool {
			// 80 kg male -> 128 g target
			return day.Metrics.ProteinTargetGrams == 128
		})).Return(nil).Once()
		mockTokens.On("AwardRoutineReward", userID, date, int64(10)).Return(nil).Once()

		_, err := svc.CompleteRoutine(models.CompleteRoutineRequest{
			UserID:  userID,
			Date:    date,
			Metrics: metrics,
		})

		assert.NoError(t, err)
		mockRoutineRepo.AssertExpectations(t)
	})

	t.Run("Scenario 5: Reward failure does not undo the routine", func(t *testing.T) {
		mockProfileRepo := new(MockProfileRepository)
		mockRoutineRepo := new(MockRoutineRepository)
		mockTokens := new(MockTokenService)
		svc := NewRoutineService(mockProfileRepo, mockRoutineRepo, mockTokens, 10)

		mockProfileRepo.On("GetProfileByUserID", userID).Return(testProfile(userID), nil).Once()
		mockRoutineRepo.On("CreateRoutineDay", mock.AnythingOfType("*models.RoutineDay")).Return(nil).Once()
		mockTokens.On("AwardRoutineReward", userID, date, int64(10)).Return(errors.New("ledger offline")).Once()

		resp, err := svc.CompleteRoutine(models.CompleteRoutineRequest{
			UserID:  userID,
			Date:    date,
			Metrics: testMetrics(),
		})

		assert.NoError(t, err)
		assert.NotNil(t, resp)
		assert.Equal(t, int64(0), resp.TokensEarned)
	})

	t.Run("Scenario 6: Invalid date format is rejected", func(t *testing.T) {
		mockProfileRepo := new(MockProfileRepository)
		mockRoutineRepo := new(MockRoutineRepository)
		mockTokens := new(MockTokenService)
		svc := NewRoutineService(mockProfileRepo, mockRoutineRepo, mockTokens, 10)

		resp, err := svc.CompleteRoutine(models.CompleteRoutineRequest{
			UserID:  userID,
			Date:    "28.08.2026",
			Metrics: testMetrics(),
		})

		assert.Nil(t, resp)
		assert.Error(t, err)
	})
}
