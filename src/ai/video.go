package ai

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

type JobState string

const (
	JobSubmitted JobState = "submitted"
	JobPending   JobState = "pending"
	JobDone      JobState = "done"
	JobFailed    JobState = "failed"
)

const (
	defaultPollInterval = 10 * time.Second
	defaultMaxWait      = 5 * time.Minute
)

// User-visible failure messages; provider detail goes to the log only.
const (
	msgVideoFailed = "Failed to generate video. Please try again later."
	msgAuthExpired = "API Key session expired. Please select your key again."
)

type VideoJob struct {
	ID          string    `json:"id"`
	Prompt      string    `json:"prompt"`
	State       JobState  `json:"state"`
	ResultURI   string    `json:"result_uri,omitempty"`
	Error       string    `json:"error,omitempty"`
	AuthExpired bool      `json:"auth_expired,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type videoOperation interface {
	Poll(ctx context.Context) (bool, error)
	ResultURI() (string, bool)
}

type videoBackend interface {
	Generate(ctx context.Context, prompt string) (videoOperation, error)
}

// VideoJobs tracks video generation as explicit jobs. Each submitted
// prompt gets a uuid, a background poller at a fixed interval, and a
// hard wait bound after which the job fails instead of polling forever.
type VideoJobs struct {
	mu           sync.RWMutex
	jobs         map[string]*VideoJob
	backend      videoBackend
	pollInterval time.Duration
	maxWait      time.Duration
}

func NewVideoJobs(backend videoBackend) *VideoJobs {
	return newVideoJobs(backend, defaultPollInterval, defaultMaxWait)
}

func newVideoJobs(backend videoBackend, pollInterval, maxWait time.Duration) *VideoJobs {
	return &VideoJobs{
		jobs:         make(map[string]*VideoJob),
		backend:      backend,
		pollInterval: pollInterval,
		maxWait:      maxWait,
	}
}

// Submit registers a job and starts its poll loop.
func (v *VideoJobs) Submit(prompt string) VideoJob {
	now := time.Now()
	job := &VideoJob{
		ID:        uuid.NewString(),
		Prompt:    prompt,
		State:     JobSubmitted,
		CreatedAt: now,
		UpdatedAt: now,
	}
	v.mu.Lock()
	v.jobs[job.ID] = job
	v.mu.Unlock()

	go v.run(job.ID, prompt)
	return *job
}

func (v *VideoJobs) Get(id string) (VideoJob, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	job, ok := v.jobs[id]
	if !ok {
		return VideoJob{}, false
	}
	return *job, true
}

func (v *VideoJobs) run(id, prompt string) {
	ctx, cancel := context.WithTimeout(context.Background(), v.maxWait)
	defer cancel()

	op, err := v.backend.Generate(ctx, prompt)
	if err != nil {
		log.Printf("ERROR: Video job %s submit failed: %v", id, err)
		v.fail(id, err)
		return
	}
	v.update(id, func(j *VideoJob) { j.State = JobPending })

	ticker := time.NewTicker(v.pollInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			log.Printf("ERROR: Video job %s timed out after %s", id, v.maxWait)
			v.fail(id, errors.New("video generation timed out"))
			return
		case <-ticker.C:
			done, err := op.Poll(ctx)
			if err != nil {
				if ctx.Err() != nil {
					log.Printf("ERROR: Video job %s timed out after %s", id, v.maxWait)
					v.fail(id, errors.New("video generation timed out"))
					return
				}
				log.Printf("ERROR: Video job %s poll failed: %v", id, err)
				v.fail(id, err)
				return
			}
			if !done {
				continue
			}
			uri, ok := op.ResultURI()
			if !ok {
				v.fail(id, errors.New("provider returned no video"))
				return
			}
			log.Printf("INFO: Video job %s done", id)
			v.update(id, func(j *VideoJob) {
				j.State = JobDone
				j.ResultURI = uri
			})
			return
		}
	}
}

func (v *VideoJobs) fail(id string, err error) {
	authExpired := IsAuthExpired(err)
	v.update(id, func(j *VideoJob) {
		j.State = JobFailed
		j.AuthExpired = authExpired
		if authExpired {
			j.Error = msgAuthExpired
		} else {
			j.Error = msgVideoFailed
		}
	})
}

func (v *VideoJobs) update(id string, fn func(*VideoJob)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	job, ok := v.jobs[id]
	if !ok {
		return
	}
	fn(job)
	job.UpdatedAt = time.Now()
}
