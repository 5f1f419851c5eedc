package store

import "github.com/Eklavvyaaaaa/CIVIX/models"

// SeedReports returns the demo reports the feed starts with. Their mixed
// statuses stand in for backend-driven status advancement, which has no
// in-app transition.
func SeedReports() []models.Report {
	return []models.Report{
		{
			ID:          "1",
			Title:       "Major Pothole on Main St.",
			Description: "Deep pothole causing traffic slowdowns and hazard to cyclists near the intersection.",
			Category:    models.Pothole,
			Status:      models.Pending,
			Location:    models.Coordinates{Lat: 40.7128, Lng: -74.0060},
			ImageURL:    "https://images.unsplash.com/photo-1515162816999-a0c47dc192f7?auto=format&fit=crop&q=80&w=400",
			Date:        "2024-10-12",
			Upvotes:     24,
		},
		{
			ID:          "2",
			Title:       "Corner Streetlight Out",
			Description: "The streetlight at the corner of Oak and Park is completely dark, creating a safety concern.",
			Category:    models.Streetlight,
			Status:      models.InProgress,
			Location:    models.Coordinates{Lat: 40.7150, Lng: -74.0090},
			ImageURL:    "https://images.unsplash.com/photo-1516410529446-2c777cb7366d?auto=format&fit=crop&q=80&w=400",
			Date:        "2024-10-10",
			Upvotes:     8,
		},
		{
			ID:          "3",
			Title:       "Garbage accumulation",
			Description: "Trash bins are full and spilling over into the sidewalk near the playground.",
			Category:    models.Garbage,
			Status:      models.Resolved,
			Location:    models.Coordinates{Lat: 40.7135, Lng: -74.0040},
			ImageURL:    "https://images.unsplash.com/photo-1530587191325-3db32d826c18?auto=format&fit=crop&q=80&w=400",
			Date:        "2024-10-11",
			Upvotes:     15,
		},
	}
}
