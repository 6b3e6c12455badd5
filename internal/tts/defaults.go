package tts

import "github.com/arcanaland/ttsforge/internal/card"

// Absent catalog fields become zero values here and nowhere else.

// placeholderImage stands in for reversible faces the catalog has no art for
const placeholderImage = "https://i.imgur.com/TyC0LWj.jpg"

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func num(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func stat(s *string) Stat {
	if s == nil {
		return ""
	}
	return Stat(*s)
}

func images(u *card.ImageURIs) Images {
	if u == nil {
		return Images{}
	}
	return Images{Normal: u.Normal, Small: u.Small}
}

func normalImage(u *card.ImageURIs, fallback string) Images {
	if u == nil || u.Normal == "" {
		return Images{Normal: fallback}
	}
	return Images{Normal: u.Normal}
}
