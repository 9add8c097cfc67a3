package transfer

type UnsplashSearchResponse struct {
	Total   int             `json:"total"`
	Results []UnsplashPhoto `json:"results"`
}

type UnsplashPhoto struct {
	ID             string `json:"id"`
	AltDescription string `json:"alt_description"`
	URLs           struct {
		Thumb   string `json:"thumb"`
		Small   string `json:"small"`
		Regular string `json:"regular"`
	} `json:"urls"`
}

type UnsplashErrorResponse struct {
	Errors []string `json:"errors"`
}
