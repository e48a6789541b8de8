// Package presentationtest provides a Presenter that records what it was asked to show.
package presentationtest

import (
	"sync"

	"task-manager/internal/domain"
)

// Kind identifies which Presenter method produced a Message.
type Kind string

const (
	KindTask    Kind = "task"
	KindTasks   Kind = "tasks"
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// Message is one recorded Presenter call.
type Message struct {
	Kind  Kind
	Text  string
	Index int
	Tasks []*domain.Task
}

// Recorder implements presentation.Presenter by recording every call.
type Recorder struct {
	mu       sync.Mutex
	Messages []Message
}

func (r *Recorder) record(m Message) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Messages = append(r.Messages, m)
}

func (r *Recorder) DisplayTask(task *domain.Task, index int) {
	r.record(Message{Kind: KindTask, Index: index, Tasks: []*domain.Task{task}})
}

func (r *Recorder) DisplayTasks(tasks []*domain.Task) {
	r.record(Message{Kind: KindTasks, Tasks: tasks})
}

func (r *Recorder) DisplaySuccess(message string) {
	r.record(Message{Kind: KindSuccess, Text: message})
}

func (r *Recorder) DisplayError(message string) {
	r.record(Message{Kind: KindError, Text: message})
}

func (r *Recorder) DisplayInfo(message string) {
	r.record(Message{Kind: KindInfo, Text: message})
}

// Last returns the most recent message, or the zero Message when nothing was recorded.
func (r *Recorder) Last() Message {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.Messages) == 0 {
		return Message{}
	}
	return r.Messages[len(r.Messages)-1]
}

// Reset forgets every recorded message.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Messages = nil
}
