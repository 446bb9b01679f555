package scoring

import "go-blocks/internal/persist"

// CheckAchievements marks every achievement stats now satisfy and returns
// the ones completed by this call.
func CheckAchievements(set *persist.AchievementSet, stats persist.Stats) []persist.Achievement {
	var unlocked []persist.Achievement
	mark := func(list []persist.Achievement, value int) {
		for i := range list {
			if !list[i].Completed && value >= list[i].Target {
				list[i].Completed = true
				unlocked = append(unlocked, list[i])
			}
		}
	}

	mark(set.Score, stats.TotalScore)
	mark(set.Combo, stats.MaxCombo)
	mark(set.Lines, stats.TotalLines)

	for i := range set.Special {
		a := &set.Special[i]
		if a.Completed {
			continue
		}
		var done bool
		switch a.ID {
		case "special_first":
			done = stats.SpecialPiecesUsed > 0
		default:
			done = a.Target > 0 && stats.SpecialPiecesUsed >= a.Target
		}
		if done {
			a.Completed = true
			unlocked = append(unlocked, *a)
		}
	}
	return unlocked
}
