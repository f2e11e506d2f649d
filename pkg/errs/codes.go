package errs

// ErrBadRequest function returns err with code "ERR::BAD::REQ"
func ErrBadRequest(err string) Err {
	return Err{
		Code:    "ERR::BAD::REQ",
		Message: "Invalid request " + err}
}

// ErrCoverageNotFound function returns err with code "ERR::COV::NOT::FOUND"
func ErrCoverageNotFound(err string) Err {
	return Err{
		Code:    "ERR::COV::NOT::FOUND",
		Message: "Coverage report not found " + err}
}

// ErrUpstream function returns err with code "ERR::COV::UPSTREAM"
func ErrUpstream(err string) Err {
	return Err{
		Code:    "ERR::COV::UPSTREAM",
		Message: "Unable to fetch coverage report from jenkins " + err}
}

// ErrMetricsEncode function returns err with code "ERR::MET::ENC"
func ErrMetricsEncode(err string) Err {
	return Err{
		Code:    "ERR::MET::ENC",
		Message: "Unable to encode metrics " + err}
}
