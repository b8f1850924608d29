package http

import (
	"github.com/krishnaagrawal0402/gamehelper/internal/domain"
	"github.com/krishnaagrawal0402/gamehelper/pkg/gamesdk"
)

func toProfilePayload(p domain.PreferenceProfile) gamesdk.ProfilePayload {
	return gamesdk.ProfilePayload{
		MemoryChallengeSeverity:  p.MemoryChallengeSeverity,
		FocusDifficulty:          p.FocusDifficulty,
		EverydayProblems:         p.EverydayProblems,
		RememberingInfo:          p.RememberingInfo,
		NavigationAbility:        p.NavigationAbility,
		LanguageDifficulties:     p.LanguageDifficulties,
		PhysicalLimitations:      p.PhysicalLimitations,
		PhysicalDetails:          p.PhysicalDetails,
		DeviceUsability:          p.DeviceUsability,
		LeisureDevices:           p.LeisureDevices,
		GamePreferences:          p.GamePreferences,
		TimeSpent:                p.TimeSpent,
		GameplayPreference:       p.GameplayPreference,
		MultiplayerInteraction:   p.MultiplayerInteraction,
		AccommodationsNeeded:     p.AccommodationsNeeded,
		AccommodationsDetails:    p.AccommodationsDetails,
		VisualHearingImpairments: p.VisualHearingImpairments,
		ImpairmentsDetails:       p.ImpairmentsDetails,
		FrustratingGameMechanics: p.FrustratingGameMechanics,
		CognitiveFocusAreas:      p.CognitiveFocusAreas,
		IdealGameDescription:     p.IdealGameDescription,
		DesiredOutcomes:          p.DesiredOutcomes,
		PreviousExperience:       p.PreviousExperience,
		GamesTried:               p.GamesTried,
		EnjoyedAspects:           p.EnjoyedAspects,
		Difficulties:             p.Difficulties,
		GamePreferencesType:      p.GamePreferencesType,
		GameValues:               p.GameValues,
		ProgressTracking:         p.ProgressTracking,
	}
}

func fromProfilePayload(p gamesdk.ProfilePayload) domain.PreferenceProfile {
	return domain.PreferenceProfile{
		MemoryChallengeSeverity:  p.MemoryChallengeSeverity,
		FocusDifficulty:          p.FocusDifficulty,
		EverydayProblems:         p.EverydayProblems,
		RememberingInfo:          p.RememberingInfo,
		NavigationAbility:        p.NavigationAbility,
		LanguageDifficulties:     p.LanguageDifficulties,
		PhysicalLimitations:      p.PhysicalLimitations,
		PhysicalDetails:          p.PhysicalDetails,
		DeviceUsability:          p.DeviceUsability,
		LeisureDevices:           p.LeisureDevices,
		GamePreferences:          p.GamePreferences,
		TimeSpent:                p.TimeSpent,
		GameplayPreference:       p.GameplayPreference,
		MultiplayerInteraction:   p.MultiplayerInteraction,
		AccommodationsNeeded:     p.AccommodationsNeeded,
		AccommodationsDetails:    p.AccommodationsDetails,
		VisualHearingImpairments: p.VisualHearingImpairments,
		ImpairmentsDetails:       p.ImpairmentsDetails,
		FrustratingGameMechanics: p.FrustratingGameMechanics,
		CognitiveFocusAreas:      p.CognitiveFocusAreas,
		IdealGameDescription:     p.IdealGameDescription,
		DesiredOutcomes:          p.DesiredOutcomes,
		PreviousExperience:       p.PreviousExperience,
		GamesTried:               p.GamesTried,
		EnjoyedAspects:           p.EnjoyedAspects,
		Difficulties:             p.Difficulties,
		GamePreferencesType:      p.GamePreferencesType,
		GameValues:               p.GameValues,
		ProgressTracking:         p.ProgressTracking,
	}
}

func toGameCards(games []domain.Game) []gamesdk.GameCard {
	cards := make([]gamesdk.GameCard, 0, len(games))
	for _, g := range games {
		cards = append(cards, gamesdk.GameCard{
			ID:             g.ID,
			Name:           g.Name,
			Difficulty:     g.Difficulty,
			Platforms:      g.Platforms,
			CognitiveFocus: g.CognitiveFocus,
			Description:    g.Description,
			MinAge:         g.MinAge,
			MaxAge:         g.MaxAge,
		})
	}
	return cards
}
