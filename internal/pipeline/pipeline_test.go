package pipeline

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTimings(t *testing.T) {
	var a Timings
	assert.False(t, a.Has(StageParse))
	assert.Zero(t, a.Sum())

	a.Add(StageParse, time.Millisecond)
	a.Add(StageParse, time.Millisecond)
	a.Add(StageTranslate, 3*time.Millisecond)

	var b Timings
	b.Add(StageIndent, time.Millisecond)
	b.Merge(a)

	assert.True(t, b.Has(StageParse))
	assert.Equal(t, 2*time.Millisecond, b.Duration(StageParse))
	assert.Equal(t, 6*time.Millisecond, b.Sum())
	assert.Equal(t, 5*time.Millisecond, b.Sum(StageParse, StageTranslate))

	var nilTimings *Timings
	nilTimings.Add(StageLoad, time.Second)
}

func TestRecorderConcurrent(t *testing.T) {
	var r Recorder
	var wg sync.WaitGroup
	for _, f := range []string{"a.cs", "b.cs", "c.cs"} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.OnEvent(Event{File: f, Stage: StageParse, Status: StatusWorking})
			r.OnEvent(Event{File: f, Stage: StageWrite, Status: StatusDone})
		}()
	}
	wg.Wait()
	r.OnEvent(Event{Status: StatusDone})

	assert.Len(t, r.Events(), 7)
	assert.Equal(t, map[string]Status{"a.cs": StatusDone, "b.cs": StatusDone, "c.cs": StatusDone}, r.Final())
}

func TestSinks(t *testing.T) {
	ch := make(chan Event, 1)
	ChannelSink{Ch: ch}.OnEvent(Event{File: "x"})
	assert.Equal(t, "x", (<-ch).File)
	ChannelSink{}.OnEvent(Event{})

	var got Status
	FuncSink(func(e Event) { got = e.Status }).OnEvent(Event{Status: StatusCached})
	assert.Equal(t, StatusCached, got)
	assert.True(t, got.Terminal())
	assert.False(t, StatusWorking.Terminal())
}
