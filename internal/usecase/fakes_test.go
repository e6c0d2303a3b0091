package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"path"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"certtrack/internal/catalog"
	"certtrack/internal/domain/credential"
	"certtrack/internal/domain/job"
	"certtrack/internal/domain/skill"

	"github.com/stretchr/testify/require"
)

func loadStatic(t *testing.T) *catalog.Static {
	t.Helper()
	doc, err := catalog.LoadFile("../catalog/testdata/catalog.yaml")
	require.NoError(t, err)
	return catalog.NewStatic(doc)
}

// countingData wraps a ReferenceData, counts top-level reads and can fail
// a chosen method.
type countingData struct {
	ReferenceData
	skillCalls atomic.Int32
	failOn     string
}

var errSource = errors.New("source down")

func (d *countingData) GetSkills(ctx context.Context) ([]skill.Skill, error) {
	d.skillCalls.Add(1)
	if d.failOn == "skills" {
		return nil, errSource
	}
	return d.ReferenceData.GetSkills(ctx)
}

func (d *countingData) GetJobSkillRequirements(ctx context.Context, jobID string) ([]job.Requirement, error) {
	if d.failOn == "requirements" {
		return nil, errSource
	}
	return d.ReferenceData.GetJobSkillRequirements(ctx, jobID)
}

func (d *countingData) GetCredentialSkillLinks(ctx context.Context, credentialID string) ([]credential.SkillLink, error) {
	if d.failOn == "links" {
		return nil, errSource
	}
	return d.ReferenceData.GetCredentialSkillLinks(ctx, credentialID)
}

type memoryCache struct {
	mu      sync.Mutex
	items   map[string][]byte
	getErr  error
	lockErr error
	sets    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{items: map[string][]byte{}}
}

func (c *memoryCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return false, c.getErr
	}
	b, ok := c.items[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memoryCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.items[key] = b
	c.sets++
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
	return nil
}

func (c *memoryCache) DeleteByPattern(_ context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.items {
		if ok, _ := path.Match(pattern, k); ok {
			delete(c.items, k)
		}
	}
	return nil
}

func (c *memoryCache) SetIfNotExists(_ context.Context, key string, value string, _ time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.lockErr != nil {
		return false, c.lockErr
	}
	if _, ok := c.items[key]; ok {
		return false, nil
	}
	c.items[key] = []byte(value)
	return true, nil
}

func (c *memoryCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.items[key]
	return ok
}

type recordingNotifier struct {
	calls [][3]int
}

func (n *recordingNotifier) NotifyCatalogUpdated(skills, jobs, credentials int) {
	n.calls = append(n.calls, [3]int{skills, jobs, credentials})
}
