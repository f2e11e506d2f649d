package testutils

// Various constant defined for to obtain dummy data for tests
const (
	ApplicationConfigPath = "testutils/testdata/sample_config.json"             // ApplicationConfigPath points to dummy config file in json format for covbridge
	CoberturaDepth2Path   = "testutils/testdata/coverage/cobertura_depth2.json" // CoberturaDepth2Path is a depth 2 cobertura response, every child truncated
	CoberturaDepth3Path   = "testutils/testdata/coverage/cobertura_depth3.json" // CoberturaDepth3Path is a depth 3 cobertura response with 27 reportable packages
	JacocoPath            = "testutils/testdata/coverage/jacoco.json"           // JacocoPath is a jacoco plugin response
	TargetsPath           = "testutils/testdata/targets.yaml"                   // TargetsPath points to a sample watch targets file
)
