package models

type MapMarker struct {
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Tooltip string  `json:"tooltip"`
	Popup   string  `json:"popup"`
}

// NearbyPhoto is a lookup match whose blob was found in the object store.
type NearbyPhoto struct {
	Record  PhotoRecord
	BlobKey string
}

// RenderedImage is an upright, re-encoded photo.
type RenderedImage struct {
	Key         string
	ContentType string
	Data        []byte
	Width       int
	Height      int
}
