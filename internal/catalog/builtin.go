package catalog

import "github.com/alexanderramin/fitloop/internal/domain"

// Builtin returns the plans that ship with fitloop.
func Builtin() []domain.WorkoutPlan {
	return []domain.WorkoutPlan{
		{
			Key:               "beginner-strength",
			Name:              "Beginner Strength Training",
			Difficulty:        "Beginner",
			Description:       "Full-body bodyweight strength circuit.",
			EstimatedCalories: 240,
			Exercises: []domain.Exercise{
				{
					Name: "Warm-up", Kind: domain.ExerciseTimed, Category: "warmup", Duration: 300,
					Description: "Dynamic warm-up exercises",
					Steps: []string{
						"Start with 2 minutes of light jogging in place",
						"30 seconds of arm circles forward, then backward",
						"30 seconds of leg swings on each side",
						"30 seconds of torso twists",
						"1 minute of dynamic stretching",
					},
					Tips: []string{"Focus on controlled movements", "Breathe deeply throughout", "Stop if you feel any pain"},
				},
				{
					Name: "Bodyweight Squats", Kind: domain.ExerciseSetsReps, Category: "strength",
					Sets: 3, Reps: 12, WorkSeconds: 45, RestSeconds: 60,
					Steps: []string{
						"Stand with feet shoulder-width apart",
						"Keep your chest up and back straight",
						"Lower your body as if sitting in a chair",
						"Go as low as you comfortably can",
						"Push through your heels to return to start",
					},
					Tips: []string{"Keep knees behind toes", "Engage your core throughout", "Don't let knees cave inward"},
				},
				{
					Name: "Push-ups (Knee)", Kind: domain.ExerciseSetsReps, Category: "strength",
					Sets: 3, Reps: 10, WorkSeconds: 40, RestSeconds: 45,
					Steps: []string{
						"Start on hands and knees",
						"Hands slightly wider than shoulders",
						"Lower chest towards the ground",
						"Keep body in a straight line",
						"Push back up to the starting position",
					},
					Tips: []string{"Keep elbows at a 45-degree angle", "Don't let hips sag", "Full range of motion is key"},
				},
				{
					Name: "Plank", Kind: domain.ExerciseSetsReps, Category: "core",
					Sets: 3, Reps: 1, WorkSeconds: 30, RestSeconds: 30,
					Description: "Hold for the full interval",
					Steps: []string{
						"Start on forearms and toes",
						"Keep body in a straight line",
						"Engage core and glutes",
						"Hold the position for the full interval",
					},
					Tips: []string{"Don't let hips rise or sag", "Breathe normally", "Keep a neutral spine"},
				},
				{
					Name: "Glute Bridges", Kind: domain.ExerciseSetsReps, Category: "strength",
					Sets: 3, Reps: 15, WorkSeconds: 35, RestSeconds: 45,
					Steps: []string{
						"Lie on your back with knees bent",
						"Feet flat on the floor, hip-width apart",
						"Lift hips towards the ceiling",
						"Squeeze glutes at the top",
						"Lower with control",
					},
					Tips: []string{"Don't over-arch your back", "Focus on glute activation", "Keep core engaged"},
				},
				{
					Name: "Cool-down", Kind: domain.ExerciseTimed, Category: "cooldown", Duration: 300,
					Description: "Static stretching",
					Steps: []string{
						"30 seconds quad stretch on each side",
						"30 seconds hamstring stretch",
						"30 seconds chest stretch",
						"30 seconds triceps stretch",
						"1 minute of deep breathing",
					},
					Tips: []string{"Hold each stretch for 20-30 seconds", "Don't bounce during stretches"},
				},
			},
		},
		{
			Key:               "hiit-cardio",
			Name:              "HIIT Cardio Blast",
			Difficulty:        "Intermediate",
			Description:       "45 seconds on, 15 seconds off.",
			EstimatedCalories: 320,
			Exercises: []domain.Exercise{
				{
					Name: "Warm-up", Kind: domain.ExerciseTimed, Category: "warmup", Duration: 300,
					Description: "Light jogging, high knees, butt kicks",
					Steps: []string{
						"2 minutes of light jogging",
						"1 minute of high knees",
						"1 minute of butt kicks",
						"1 minute of dynamic stretching",
					},
					Tips: []string{"Gradually increase intensity", "Listen to your body"},
				},
				{
					Name: "Jumping Jacks", Kind: domain.ExerciseSetsReps, Category: "cardio",
					Sets: 4, Reps: 30, WorkSeconds: 45, RestSeconds: 15,
					Steps: []string{
						"Start with feet together, arms at sides",
						"Jump feet out while raising arms overhead",
						"Jump back to the starting position",
						"Maintain a steady rhythm",
					},
					Tips: []string{"Land softly on the balls of your feet", "Keep core engaged", "Breathe consistently"},
				},
				{
					Name: "Mountain Climbers", Kind: domain.ExerciseSetsReps, Category: "cardio",
					Sets: 4, Reps: 20, WorkSeconds: 45, RestSeconds: 15,
					Steps: []string{
						"Start in a plank position",
						"Bring your right knee towards your chest",
						"Quickly switch legs",
						"Maintain a fast pace",
					},
					Tips: []string{"Keep hips level", "Maintain a straight back", "Focus on speed and control"},
				},
				{
					Name: "Burpees", Kind: domain.ExerciseSetsReps, Category: "cardio",
					Sets: 4, Reps: 10, WorkSeconds: 45, RestSeconds: 15,
					Steps: []string{
						"Start standing",
						"Drop into a squat position",
						"Kick feet back to a plank",
						"Do a push-up",
						"Jump feet forward and explode up",
					},
					Tips: []string{"Modify by stepping back instead of jumping", "Land softly"},
				},
				{
					Name: "Cool-down", Kind: domain.ExerciseTimed, Category: "cooldown", Duration: 180,
					Description: "Walk it out and breathe deeply",
					Tips:        []string{"Let your heart rate come down before stopping"},
				},
			},
		},
	}
}
