package global

import "time"

// BinaryVersion is the covbridge release, overridden at link time.
var BinaryVersion = "dev"

// All constants related to covbridge
const (
	DefaultHTTPTimeout      = 30 * time.Second
	DefaultDepth            = 2
	DefaultMaxRetries       = 3
	DefaultPort             = "9877"
	DefaultWatchSchedule    = "@every 15m"
	DefaultJacocoReportName = "Jacoco Report"
	DefaultJobPath          = "job"
	LastSuccessfulBuild     = "lastSuccessfulBuild"
	ResultsKey              = "results"
	RequestIDHeader         = "X-Request-ID"
	APISuffix               = "api/json"
	DepthQueryParam         = "depth"
	ReportFetchConcurrency  = 8
)
