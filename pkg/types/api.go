package types

// RegionsResponse wraps the list returned by GET /regions.
type RegionsResponse struct {
	// Region names known to the loaded model, in column order.
	Regions []string `json:"regions"`
}

// TypesResponse wraps the list returned by GET /types.
type TypesResponse struct {
	// Property types known to the loaded model, in column order.
	Types []string `json:"types"`
}

// ErrorResponse is a consistent JSON error payload.
type ErrorResponse struct {
	// Error message.
	// example: invalid JSON body
	Error string `json:"error" example:"invalid JSON body"`
	// HTTP status code.
	// example: 400
	Code int `json:"code" example:"400"`
}

// StatusResponse is returned by GET /status.
type StatusResponse struct {
	// Loader state: unloaded or ready.
	// example: ready
	State string `json:"state" example:"ready"`
	// Kind of the loaded model (linear, forest).
	// example: linear
	ModelKind string `json:"model_kind,omitempty" example:"linear"`
	// Path of the column schema artifact.
	ColumnsPath string `json:"columns_path,omitempty"`
	// Path of the model artifact.
	ModelPath string `json:"model_path,omitempty"`
	// Number of columns in the feature vector.
	// example: 6
	Columns int `json:"columns" example:"6"`
	// Number of recognized regions.
	// example: 2
	Regions int `json:"regions" example:"2"`
	// Number of recognized property types.
	// example: 2
	Types int `json:"types" example:"2"`
	// Number of trees when the model is a forest.
	// example: 100
	Trees int `json:"trees,omitempty" example:"100"`
	// Time the artifacts were loaded (unix seconds).
	// example: 1700000000
	LoadedAtUnix int64 `json:"loaded_at_unix,omitempty" example:"1700000000"`
	// Uptime of the server in seconds.
	// example: 3600
	UptimeSeconds int64 `json:"uptime_seconds" example:"3600"`
	// Server time in unix seconds.
	// example: 1700000000
	ServerTimeUnix int64 `json:"server_time_unix" example:"1700000000"`
}
