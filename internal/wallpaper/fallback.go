package wallpaper

// Fallback returns the built-in collection served when the primary data
// source cannot be read. A fresh slice is returned on every call.
func Fallback() []Wallpaper {
	return []Wallpaper{
		{
			ID:           1,
			Title:        "Cosmic Nebula",
			ImageURL:     "https://images.unsplash.com/photo-1462331940025-496dfbfc7564",
			ThumbnailURL: "https://images.unsplash.com/photo-1462331940025-496dfbfc7564?w=400",
			Category:     "Space",
			Tags:         []string{"galaxy", "stars", "nebula", "cosmos", "purple"},
			Resolution:   "3840x2160",
			Views:        12453,
			Downloads:    3782,
			DateAdded:    "2023-04-15",
		},
		{
			ID:           2,
			Title:        "Mountain Sunrise",
			ImageURL:     "https://images.unsplash.com/photo-1506905925346-21bda4d32df4",
			ThumbnailURL: "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=400",
			Category:     "Nature",
			Tags:         []string{"mountains", "sunrise", "landscape", "scenic", "alps"},
			Resolution:   "3840x2160",
			Views:        9876,
			Downloads:    2345,
			DateAdded:    "2023-05-20",
		},
	}
}
