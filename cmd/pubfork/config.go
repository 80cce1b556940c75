package main

import "time"

// Config is the container for app configuration
type Config struct {
	// Server - gitlab server host, e.g. gitlab.hrz.tu-chemnitz.de
	Server string `default:""`

	// Token - personal gitlab access token, sent as Private-Token header on every api call
	Token string `default:""`

	// TemplateProjectID - id of the template project to fork
	TemplateProjectID int `default:"5326"`

	// DefaultNamespace - namespace used when --namespace is not given
	DefaultNamespace string `default:"numapde/Publications"`

	// APIRateLimit - max frequency for gitlab rest api calls
	APIRateLimit float64 `default:"2"`

	// HTTPTimeout - timeout for a single api request
	HTTPTimeout time.Duration `default:"30s"`

	// ReadinessPolls - max number of readiness re-checks after forking
	ReadinessPolls int `default:"5"`

	// ReadinessWait - wait time between readiness re-checks
	ReadinessWait time.Duration `default:"2s"`

	// JournalPath - filepath for the journal of created repositories
	JournalPath string `default:"./pubfork.data"`

	// JournalBucketName - bolt db bucket name
	JournalBucketName string `default:"projects"`
}
