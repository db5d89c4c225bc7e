package track

// Filter narrows a listing to exact field matches. Blank fields do not constrain
// the result.
type Filter struct {
	Genre    string
	Platform string
}

// DistinctField reports whether key names a field whose distinct values may be
// enumerated.
func DistinctField(key string) bool {
	switch key {
	case KeyTitle, KeyArtist, KeyGenre, KeyPlatform:
		return true
	default:
		return false
	}
}
