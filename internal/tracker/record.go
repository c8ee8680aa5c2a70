package tracker

// RecordPatch is a partial update to a DailyRecord. Nil fields are left
// untouched; add fields accumulate onto the existing value.
type RecordPatch struct {
	AddJobApps         *int
	Workout            *bool
	AddReadingPages    *int
	SocialConnection   *bool
	AddSkillsMinutes   *int
	AddCreativeMinutes *int
	EnergyPredicted    *int
	EnergyActual       *int
	Mood               *string
	Intention          *string
	DayType            *string
	Reflection         *string
}

// ApplyPatch returns a new record with the patch merged in. The input
// record is not modified.
func ApplyPatch(r DailyRecord, p RecordPatch) DailyRecord {
	out := r
	if p.AddJobApps != nil {
		out.Completed.JobApps += *p.AddJobApps
		if out.Completed.JobApps < 0 {
			out.Completed.JobApps = 0
		}
	}
	if p.Workout != nil {
		out.Completed.Workout = *p.Workout
	}
	if p.AddReadingPages != nil {
		out.Completed.ReadingPages += *p.AddReadingPages
		if out.Completed.ReadingPages < 0 {
			out.Completed.ReadingPages = 0
		}
	}
	if p.SocialConnection != nil {
		out.Completed.SocialConnection = *p.SocialConnection
	}
	if p.AddSkillsMinutes != nil {
		out.Completed.SkillsMinutes += *p.AddSkillsMinutes
		if out.Completed.SkillsMinutes < 0 {
			out.Completed.SkillsMinutes = 0
		}
	}
	if p.AddCreativeMinutes != nil {
		out.Completed.CreativeMinutes += *p.AddCreativeMinutes
		if out.Completed.CreativeMinutes < 0 {
			out.Completed.CreativeMinutes = 0
		}
	}
	if p.EnergyPredicted != nil {
		out.EnergyPredicted = ClampEnergy(*p.EnergyPredicted)
	}
	if p.EnergyActual != nil {
		out.EnergyActual = ClampEnergy(*p.EnergyActual)
	}
	if p.Mood != nil {
		out.Mood = *p.Mood
	}
	if p.Intention != nil {
		out.Intention = *p.Intention
	}
	if p.DayType != nil {
		out.DayType = *p.DayType
	}
	if p.Reflection != nil {
		out.Reflection = *p.Reflection
	}
	return out
}

// CompletionPatch builds a patch recording progress in a category. For
// boolean-daily categories any positive amount marks the day done and
// zero or negative clears it; for hour-based categories the amount is
// minutes.
func CompletionPatch(c Category, amount int) RecordPatch {
	var p RecordPatch
	switch c {
	case JobApps:
		p.AddJobApps = &amount
	case Workouts:
		done := amount > 0
		p.Workout = &done
	case ReadingPages:
		p.AddReadingPages = &amount
	case SkillsHours:
		p.AddSkillsMinutes = &amount
	case SocialConnections:
		done := amount > 0
		p.SocialConnection = &done
	case CreativeHours:
		p.AddCreativeMinutes = &amount
	}
	return p
}
