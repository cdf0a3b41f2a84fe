package deepface

// RepresentRequest for POST /represent
type RepresentRequest struct {
	Img      string `json:"img"`      // base64 encoded image
	Model    string `json:"model"`    // "VGG-Face", "Facenet512", etc
	Detector string `json:"detector"` // "mtcnn", "retinaface", etc
}

// RepresentResponse from POST /represent
type RepresentResponse struct {
	Results []RepresentResult `json:"results"`
}

type RepresentResult struct {
	Embedding  []float64  `json:"embedding"`
	FacialArea FacialArea `json:"facial_area"`
	Confidence float64    `json:"face_confidence"`
}

type FacialArea struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}
