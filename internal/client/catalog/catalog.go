// Package catalog holds the built-in exercise catalog and the pure filtering
// logic applied to exercise lists. The built-in data doubles as the fallback
// when the fitness API is unreachable or no API key is configured.
package catalog

import "github.com/dmitrijs2005/fitbuddy/internal/client/models"

var builtin = []models.Exercise{
	{
		Name:         "Push-ups",
		Type:         "strength",
		Muscle:       "chest",
		Equipment:    "body_only",
		Difficulty:   "beginner",
		Instructions: "Get into a plank position with your arms straight. Lower your body until your chest nearly touches the floor. Push yourself back up to the starting position.",
	},
	{
		Name:         "Squats",
		Type:         "strength",
		Muscle:       "quadriceps",
		Equipment:    "body_only",
		Difficulty:   "beginner",
		Instructions: "Stand with feet shoulder-width apart. Lower your body by bending your knees and hips. Keep your back straight and chest up. Return to starting position.",
	},
	{
		Name:         "Plank",
		Type:         "strength",
		Muscle:       "abdominals",
		Equipment:    "body_only",
		Difficulty:   "beginner",
		Instructions: "Get into a forearm plank position with your body in a straight line. Hold this position, engaging your core muscles.",
	},
	{
		Name:         "Lunges",
		Type:         "strength",
		Muscle:       "quadriceps",
		Equipment:    "body_only",
		Difficulty:   "beginner",
		Instructions: "Step forward with one leg, lowering your hips until both knees are bent at 90 degrees. Push back to starting position and repeat with other leg.",
	},
	{
		Name:         "Burpees",
		Type:         "cardio",
		Muscle:       "quadriceps",
		Equipment:    "body_only",
		Difficulty:   "intermediate",
		Instructions: "Start standing, drop into a squat, kick feet back into plank, do a push-up, jump feet forward, and explosively jump up.",
	},
	{
		Name:         "Mountain Climbers",
		Type:         "cardio",
		Muscle:       "abdominals",
		Equipment:    "body_only",
		Difficulty:   "intermediate",
		Instructions: "Start in plank position. Bring one knee toward chest, then quickly switch legs in a running motion.",
	},
	{
		Name:         "Jumping Jacks",
		Type:         "cardio",
		Muscle:       "quadriceps",
		Equipment:    "body_only",
		Difficulty:   "beginner",
		Instructions: "Start standing with arms at sides. Jump while spreading legs and raising arms overhead. Return to starting position.",
	},
	{
		Name:         "Bicycle Crunches",
		Type:         "strength",
		Muscle:       "abdominals",
		Equipment:    "body_only",
		Difficulty:   "intermediate",
		Instructions: "Lie on your back with hands behind head. Bring opposite elbow to opposite knee in a cycling motion.",
	},
	{
		Name:         "Tricep Dips",
		Type:         "strength",
		Muscle:       "triceps",
		Equipment:    "body_only",
		Difficulty:   "intermediate",
		Instructions: "Using a bench or chair, lower your body by bending your elbows, then push back up.",
	},
	{
		Name:         "High Knees",
		Type:         "cardio",
		Muscle:       "quadriceps",
		Equipment:    "body_only",
		Difficulty:   "beginner",
		Instructions: "Run in place while lifting knees as high as possible with each step.",
	},
}

// Builtin returns a copy of the built-in exercise catalog.
func Builtin() []models.Exercise {
	out := make([]models.Exercise, len(builtin))
	copy(out, builtin)
	return out
}
