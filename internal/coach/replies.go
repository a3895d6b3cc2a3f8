package coach

import "strings"

var defaultCommands = []string{"fitloop dashboard", "fitloop plan list", "fitloop workout start"}

var nextCommands = map[Intent][]string{
	IntentWorkout:   {"fitloop plan list", "fitloop workout start"},
	IntentNutrition: {"fitloop progress log", "fitloop progress summary"},
	IntentPain:      {"fitloop progress log"},
	IntentWeight:    {"fitloop goal add", "fitloop progress summary"},
	IntentGreeting:  {"fitloop dashboard", "fitloop plan list"},
	IntentGeneral:   {"fitloop dashboard"},
}

func reply(intent Intent, lower string, words []string) string {
	switch intent {
	case IntentWorkout:
		return workoutReply(lower, words)
	case IntentNutrition:
		return nutritionReply(lower, words)
	case IntentPain:
		return "Sorry to hear you're in discomfort. For minor muscle soreness, rest, ice and gentle stretching may help. " +
			"For severe or persistent pain, stop training and see a healthcare professional."
	case IntentWeight:
		return weightReply(words)
	case IntentGreeting:
		return "Hi! Ask me about workouts, nutrition or weight, or start a session with 'fitloop workout start'."
	default:
		return "Could you add a bit more detail? I can help with workouts, nutrition, soreness and weight goals."
	}
}

func workoutReply(lower string, words []string) string {
	switch {
	case hasWord(words, "beginner"):
		return "Start with bodyweight exercises such as squats, knee push-ups and planks, 2-3 sessions a week, " +
			"focusing on form. The beginner-strength plan covers all of them."
	case hasWord(words, "strength") || hasWord(words, "weight"):
		return "Compound movements give the most strength for your time. Do 3 sets of 8-12 reps, 2-3 times a week, " +
			"and add load as sets get easy."
	case hasWord(words, "cardio") || hasWord(words, "running"):
		return "Aim for 150 minutes of moderate or 75 minutes of vigorous cardio a week. " +
			"The hiit-cardio plan packs intervals into about 25 minutes."
	case hasWord(words, "home") || strings.Contains(lower, "no equipment"):
		return "Without equipment, use squats, push-ups, lunges, planks and glute bridges. " +
			"Water bottles make fine light weights."
	default:
		return "Tell me your goal (weight loss, muscle or endurance) and your level, or browse plans with 'fitloop plan list'."
	}
}

func nutritionReply(lower string, words []string) string {
	switch {
	case hasWord(words, "lose") || strings.Contains(lower, "weight loss"):
		return "Eat in a modest calorie deficit built on lean protein, vegetables, whole grains and healthy fats. " +
			"Cut back on processed food and sugary drinks."
	case hasWord(words, "muscle") || hasWord(words, "protein"):
		return "For muscle growth, aim for 1.6-2.2 g of protein per kg of body weight daily from chicken, fish, eggs, " +
			"Greek yogurt, tofu or legumes, and keep carbs up for energy."
	case hasWord(words, "healthy") || hasWord(words, "meal"):
		return "A balanced plate has protein, complex carbs, healthy fats and vegetables, " +
			"for example chicken, quinoa, avocado and roasted vegetables."
	default:
		return "Nutrition drives most results. What are you aiming for, and do you have dietary preferences?"
	}
}

func weightReply(words []string) string {
	switch {
	case hasWord(words, "lose"):
		return "Aim for 1-2 lb a week: a 500-1000 kcal daily deficit, plenty of protein and fiber, and both cardio " +
			"and strength training. Track it with a weight goal."
	case hasWord(words, "gain"):
		return "Eat in a calorie surplus from nutrient-dense food, raise protein and train for strength so the gain " +
			"is mostly muscle."
	default:
		return "Losing or gaining, consistency with food and training matters most. Log your weight daily to see the trend."
	}
}
