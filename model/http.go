package model

type TransposeRequestBody struct {
	Text  string `json:"text"`
	Shift int    `json:"shift"`
	Flats bool   `json:"flats"`
	From  string `json:"from,omitempty"`
	To    string `json:"to,omitempty"`
}

type TransposeResponse struct {
	Plain     string `json:"plain"`
	Annotated string `json:"annotated"`
	Shift     int    `json:"shift"`
}

type KeyRequestBody struct {
	Text  string `json:"text"`
	Flats bool   `json:"flats"`
}

type KeyResponse struct {
	Key *string `json:"key"`
}

type KeysResponse struct {
	Keys []string `json:"keys"`
}

type ChordResponse struct {
	Token      string `json:"token"`
	Root       string `json:"root"`
	Suffix     string `json:"suffix"`
	Bass       string `json:"bass,omitempty"`
	Transposed string `json:"transposed"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
