// Command shadow_compare replays read-only requests against the legacy Ktor
// backend and this API, reporting status and body parity. It exists for the
// migration window and exits non-zero on any critical mismatch.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"reflect"
	"strings"
	"time"
)

type target struct {
	Method   string `json:"method"`
	Path     string `json:"path"`
	Critical bool   `json:"critical"`
}

// defaultTargets covers every read endpoint the mobile and admin clients hit.
// Stats payloads carry a server timestamp, so they stay non-critical.
var defaultTargets = []target{
	{Method: http.MethodGet, Path: "/api/institutes", Critical: true},
	{Method: http.MethodGet, Path: "/api/institutes/search?q=tecnológico", Critical: true},
	{Method: http.MethodGet, Path: "/api/institutes/stats", Critical: true},
	{Method: http.MethodGet, Path: "/api/institutes/1", Critical: true},
	{Method: http.MethodGet, Path: "/api/institutes/1/events", Critical: true},
	{Method: http.MethodGet, Path: "/api/institutes/9999", Critical: true},
	{Method: http.MethodGet, Path: "/api/events", Critical: true},
	{Method: http.MethodGet, Path: "/api/events/search?q=Feria", Critical: true},
	{Method: http.MethodGet, Path: "/api/events/category/institutional", Critical: true},
	{Method: http.MethodGet, Path: "/api/events/upcoming", Critical: false},
	{Method: http.MethodGet, Path: "/api/events/stats", Critical: false},
	{Method: http.MethodGet, Path: "/api/events/1", Critical: true},
	{Method: http.MethodGet, Path: "/api/events/9999", Critical: true},
	{Method: http.MethodGet, Path: "/api/auth/client-info", Critical: false},
}

// volatileKeys are dropped before comparing bodies. Both stacks stamp these
// at response time so they never match.
var volatileKeys = map[string]bool{
	"createdAt":   true,
	"updatedAt":   true,
	"lastUpdated": true,
}

type result struct {
	Target       target
	GoStatus     int
	LegacyStatus int
	StatusMatch  bool
	BodyMatch    bool
	GoDuration   time.Duration
	Err          error
}

func main() {
	var (
		goBase      string
		legacyBase  string
		targetsPath string
		timeout     time.Duration
	)

	flag.StringVar(&goBase, "go-base", "http://localhost:8080", "Go API base URL")
	flag.StringVar(&legacyBase, "legacy-base", "http://localhost:8081", "legacy Ktor API base URL")
	flag.StringVar(&targetsPath, "targets", "", "optional JSON targets file overriding the built-in set")
	flag.DurationVar(&timeout, "timeout", 5*time.Second, "HTTP client timeout")
	flag.Parse()

	targets := defaultTargets
	if targetsPath != "" {
		loaded, err := loadTargets(targetsPath)
		if err != nil {
			log.Fatalf("failed to load targets: %v", err)
		}
		targets = loaded
	}

	client := &http.Client{Timeout: timeout}
	breaking := 0
	for _, tgt := range targets {
		res := compare(client, goBase, legacyBase, tgt)
		report(res)
		if tgt.Critical && (res.Err != nil || !res.StatusMatch || !res.BodyMatch) {
			breaking++
		}
	}

	fmt.Printf("\ncritical mismatches: %d\n", breaking)
	if breaking > 0 {
		os.Exit(1)
	}
}

func loadTargets(path string) ([]target, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg struct {
		Targets []target `json:"targets"`
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if len(cfg.Targets) == 0 {
		return nil, fmt.Errorf("no targets defined in %s", path)
	}
	return cfg.Targets, nil
}

func compare(client *http.Client, goBase, legacyBase string, tgt target) result {
	res := result{Target: tgt}

	goStatus, goBody, goDur, err := fetch(client, goBase, tgt)
	if err != nil {
		res.Err = fmt.Errorf("go request: %w", err)
		return res
	}
	legacyStatus, legacyBody, _, err := fetch(client, legacyBase, tgt)
	if err != nil {
		res.Err = fmt.Errorf("legacy request: %w", err)
		return res
	}

	res.GoStatus = goStatus
	res.LegacyStatus = legacyStatus
	res.GoDuration = goDur
	res.StatusMatch = goStatus == legacyStatus
	res.BodyMatch = bodiesEqual(goBody, legacyBody)
	return res
}

func fetch(client *http.Client, base string, tgt target) (int, []byte, time.Duration, error) {
	url := strings.TrimRight(base, "/") + tgt.Path
	req, err := http.NewRequest(tgt.Method, url, nil)
	if err != nil {
		return 0, nil, 0, err
	}
	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, 0, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, 0, err
	}
	return resp.StatusCode, body, time.Since(start), nil
}

func bodiesEqual(a, b []byte) bool {
	var aj, bj interface{}
	if err := json.Unmarshal(a, &aj); err != nil {
		return string(a) == string(b)
	}
	if err := json.Unmarshal(b, &bj); err != nil {
		return false
	}
	normalize(&aj)
	normalize(&bj)
	return reflect.DeepEqual(aj, bj)
}

func normalize(v *interface{}) {
	switch val := (*v).(type) {
	case map[string]interface{}:
		for k := range val {
			if volatileKeys[k] {
				delete(val, k)
			}
		}
		for k, v2 := range val {
			normalize(&v2)
			val[k] = v2
		}
	case []interface{}:
		for i, v2 := range val {
			normalize(&v2)
			val[i] = v2
		}
	case float64:
		// JSON numbers decode as float64; fold integral values so 1 == 1.0.
		if val == float64(int64(val)) {
			*v = int64(val)
		}
	}
}

func report(res result) {
	status := "OK"
	switch {
	case res.Err != nil:
		status = "ERROR"
	case !res.StatusMatch || !res.BodyMatch:
		status = "DIFF"
	}
	fmt.Printf("[%s] %s %s\n", status, res.Target.Method, res.Target.Path)
	if res.Err != nil {
		fmt.Printf("  error: %v\n", res.Err)
		return
	}
	fmt.Printf("  go=%d legacy=%d body_match=%t (%s)\n", res.GoStatus, res.LegacyStatus, res.BodyMatch, res.GoDuration)
}
