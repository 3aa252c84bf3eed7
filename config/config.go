package config

import (
	"os"
	"path/filepath"
	"time"

	"np-server/models"
)

// Near filter. Places at or beyond this distance are dropped.
const NEAR_THRESHOLD_KM = 1.5
const NEAR_THRESHOLD_METERS = NEAR_THRESHOLD_KM * 1000

// Server config
const SERVER_DEFAULT_ADDRESS = ":8080"
const SERVER_DEFAULT_REQUEST_TIMEOUT = 60 * time.Second
const SERVER_DEFAULT_SHUTDOWN_TIMEOUT = 5 * time.Second

// HERE Discover API
const HERE_DISCOVER_ENDPOINT_BASE_V1 = "https://discover.search.hereapi.com/v1"
const HERE_DISCOVER_RESULT_LIMIT = 10
const HERE_DEFAULT_CONCURRENCY = 1
const HERE_DEFAULT_TIMEOUT = 10 * time.Second

// OpenAI API
const OPENAI_ENDPOINT_BASE_V1 = "https://api.openai.com/v1"
const OPENAI_DEFAULT_MODEL = "gpt-4o"
const OPENAI_DEFAULT_TIMEOUT = 45 * time.Second

// Nominatim API
const NOMINATIM_ENDPOINT_BASE = "https://nominatim.openstreetmap.org"
const NOMINATIM_DEFAULT_USER_AGENT = "geoapiExercises"
const NOMINATIM_DEFAULT_TIMEOUT = 10 * time.Second

// Review config
const REVIEW_DEFAULT_LANGUAGE = "Arabic"

// Resources file paths
const RESOURCES_PATH_PREFIX = "resources"
const DISCOVER_RESPONSE_RESOURCE = "discover_response.json"
const CHAT_COMPLETION_RESPONSE_RESOURCE = "chat_completion_response.json"
const GEOCODE_RESPONSE_RESOURCE = "geocode_response.json"

// PLACE_CATEGORIES is the fixed, ordered set of categories searched around a coordinate.
var PLACE_CATEGORIES = []models.Category{
	{Name: "Hypermarkets", Query: "hypermarket"},
	{Name: "Banks", Query: "bank"},
	{Name: "Restaurants", Query: "restaurant"},
	{Name: "Schools", Query: "school"},
	{Name: "Hospitals", Query: "hospital"},
	{Name: "Pharmacies", Query: "pharmacy"},
	{Name: "Parks", Query: "park"},
	{Name: "Hotels", Query: "hotel"},
	{Name: "Cafes", Query: "cafe"},
	{Name: "Shopping Malls", Query: "shopping-mall"},
}

// BaseDir returns the absolute path of the project root directory
func BaseDir() string {
	// Check if PROJECT_ROOT is set
	if root := os.Getenv("PROJECT_ROOT"); root != "" {
		return root
	}

	wd, err := os.Getwd()
	if err != nil {
		panic("Unable to determine working directory: " + err.Error())
	}

	// Walk up looking for go.mod so tests running inside a package dir resolve the same root.
	for dir := wd; ; {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return wd
}

func GetResourcePath(resourceFile string) string {
	return filepath.Join(BaseDir(), RESOURCES_PATH_PREFIX, resourceFile)
}
