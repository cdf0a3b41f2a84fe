package rekognition

// Config holds settings for the Rekognition provider
type Config struct {
	// Region is the AWS region hosting the Rekognition endpoint
	Region string
}
