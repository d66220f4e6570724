package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"closet/internal/auth"
	"closet/internal/authz"
	"closet/internal/cache"
	"closet/internal/model"
	"closet/internal/repository"
)

const (
	dashboardCacheTTL = 5 * time.Minute

	// Priority score weights. A user surfaces higher the more unevaluated
	// active items they have, when no outfit was made for them in the last
	// 30 days, and while their profile is mostly empty.
	unevaluatedItemWeight   = 3
	staleOutfitBonus        = 10
	incompleteProfileBonus  = 5
	staleOutfitWindow       = 30 * 24 * time.Hour
	incompleteProfileCutoff = 50
)

// DashboardEntry is one assigned user's row in the stylist dashboard.
type DashboardEntry struct {
	User                   model.Summary `json:"user"`
	PriorityScore          int           `json:"priority_score"`
	UnevaluatedItems       int64         `json:"unevaluated_items"`
	PendingRecommendations int64         `json:"pending_recommendations"`
	LastOutfitAt           *time.Time    `json:"last_outfit_at,omitempty"`
	ProfileCompletion      int           `json:"profile_completion"`
}

// DashboardService computes the stylist's priority-sorted user list.
type DashboardService interface {
	Dashboard(ctx context.Context, caller auth.Identity) ([]DashboardEntry, error)
}

type dashboardService struct {
	userRepo   repository.UserRepository
	itemRepo   repository.ClothingItemRepository
	outfitRepo repository.OutfitRepository
	recRepo    repository.RecommendationRepository
	cache      *cache.Client
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(
	userRepo repository.UserRepository,
	itemRepo repository.ClothingItemRepository,
	outfitRepo repository.OutfitRepository,
	recRepo repository.RecommendationRepository,
	cache *cache.Client,
) DashboardService {
	return &dashboardService{
		userRepo:   userRepo,
		itemRepo:   itemRepo,
		outfitRepo: outfitRepo,
		recRepo:    recRepo,
		cache:      cache,
	}
}

func dashboardCacheKey(stylistID uint) string {
	return fmt.Sprintf("dashboard:%d", stylistID)
}

// Dashboard returns the stylist's assigned users sorted by priority score,
// highest first. The aggregate is cached for five minutes per stylist;
// staleness only delays reordering, never authorization.
func (s *dashboardService) Dashboard(ctx context.Context, caller auth.Identity) ([]DashboardEntry, error) {
	if err := authz.RequireRole(caller.Role, model.RoleStylist); err != nil {
		return nil, err
	}

	if data, _ := s.cache.Get(ctx, dashboardCacheKey(caller.UserID)); data != nil {
		var cached []DashboardEntry
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	users, err := s.userRepo.ListByAssignedStylist(ctx, caller.UserID)
	if err != nil {
		return nil, fmt.Errorf("list assigned users: %w", err)
	}

	now := time.Now()
	entries := make([]DashboardEntry, 0, len(users))
	for i := range users {
		entry, err := s.buildEntry(ctx, caller.UserID, &users[i], now)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].PriorityScore != entries[j].PriorityScore {
			return entries[i].PriorityScore > entries[j].PriorityScore
		}
		return olderOutfit(entries[i].LastOutfitAt, entries[j].LastOutfitAt)
	})

	if payload, err := json.Marshal(entries); err == nil {
		_ = s.cache.Set(ctx, dashboardCacheKey(caller.UserID), payload, dashboardCacheTTL)
	}
	return entries, nil
}

func (s *dashboardService) buildEntry(ctx context.Context, stylistID uint, user *model.User, now time.Time) (DashboardEntry, error) {
	unevaluated, err := s.itemRepo.CountActiveWithoutEvaluation(ctx, user.ID, stylistID)
	if err != nil {
		return DashboardEntry{}, fmt.Errorf("count unevaluated items for user %d: %w", user.ID, err)
	}
	lastOutfit, err := s.outfitRepo.LatestCreatedAtForUser(ctx, user.ID)
	if err != nil {
		return DashboardEntry{}, fmt.Errorf("latest outfit for user %d: %w", user.ID, err)
	}
	pending, err := s.recRepo.CountPendingByUser(ctx, user.ID)
	if err != nil {
		return DashboardEntry{}, fmt.Errorf("count pending recommendations for user %d: %w", user.ID, err)
	}

	completion := 0
	if user.Profile != nil {
		completion, _ = ProfileCompletion(user.Profile)
	}

	score := int(unevaluated) * unevaluatedItemWeight
	if lastOutfit == nil || now.Sub(*lastOutfit) > staleOutfitWindow {
		score += staleOutfitBonus
	}
	if completion < incompleteProfileCutoff {
		score += incompleteProfileBonus
	}

	return DashboardEntry{
		User:                   user.Summarize(),
		PriorityScore:          score,
		UnevaluatedItems:       unevaluated,
		PendingRecommendations: pending,
		LastOutfitAt:           lastOutfit,
		ProfileCompletion:      completion,
	}, nil
}

// olderOutfit breaks score ties: users untouched the longest come first,
// with "never had an outfit" oldest of all.
func olderOutfit(a, b *time.Time) bool {
	if a == nil {
		return b != nil
	}
	if b == nil {
		return false
	}
	return a.Before(*b)
}
