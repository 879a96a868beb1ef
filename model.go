package ftracker

// Summary is the outcome of one package in a batch
type Summary struct {
	Index   int          `json:"index"`
	Code    string       `json:"code"`
	Info    *InfoMessage `json:"info"`
	Message string       `json:"message"`
}

type Config struct {
	Language    Language  `json:"language"`
	Concurrency int       `json:"concurrency"`
	Packages    []Package `json:"packages"`
}
