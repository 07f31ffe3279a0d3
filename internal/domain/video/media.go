package video

// MediaStatus tracks the encoding state of an audio/video file.
type MediaStatus string

const (
	MediaPending    MediaStatus = "PENDING"
	MediaProcessing MediaStatus = "PROCESSING"
	MediaCompleted  MediaStatus = "COMPLETED"
	MediaError      MediaStatus = "ERROR"
)

// ImageMedia points to a stored image.
type ImageMedia struct {
	Checksum string `json:"checksum"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

// NewImageMedia creates an image reference.
func NewImageMedia(checksum, name, location string) ImageMedia {
	return ImageMedia{Checksum: checksum, Name: name, Location: location}
}

// AudioVideoMedia points to a stored audio/video file and its encoded output.
type AudioVideoMedia struct {
	Checksum        string      `json:"checksum"`
	Name            string      `json:"name"`
	RawLocation     string      `json:"raw_location"`
	EncodedLocation string      `json:"encoded_location"`
	Status          MediaStatus `json:"status"`
}

// NewAudioVideoMedia creates an audio/video reference.
func NewAudioVideoMedia(checksum, name, rawLocation, encodedLocation string, status MediaStatus) AudioVideoMedia {
	return AudioVideoMedia{
		Checksum:        checksum,
		Name:            name,
		RawLocation:     rawLocation,
		EncodedLocation: encodedLocation,
		Status:          status,
	}
}
