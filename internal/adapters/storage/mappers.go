package storage

import "focado/internal/domain"

func entryToDomain(m HistoryEntryModel) domain.HistoryEntry {
	return domain.HistoryEntry{
		ID:              m.ID,
		SessionType:     domain.SessionType(m.SessionType),
		DurationMinutes: m.DurationMinutes,
		CompletedAt:     m.CompletedAt,
		Date:            m.Date,
		PomodoroNumber:  m.PomodoroNumber,
	}
}

func entryToModel(e domain.HistoryEntry) HistoryEntryModel {
	return HistoryEntryModel{
		ID:              e.ID,
		SessionType:     string(e.SessionType),
		DurationMinutes: e.DurationMinutes,
		CompletedAt:     e.CompletedAt,
		Date:            e.Date,
		PomodoroNumber:  e.PomodoroNumber,
	}
}

func taskToDomain(m TaskModel) domain.Task {
	return domain.Task{
		ID:        m.ID,
		Title:     m.Title,
		Done:      m.Done,
		Pomodoros: m.Pomodoros,
		Position:  m.Position,
		CreatedAt: m.CreatedAt,
	}
}

func taskToModel(t domain.Task) TaskModel {
	return TaskModel{
		ID:        t.ID,
		Title:     t.Title,
		Done:      t.Done,
		Pomodoros: t.Pomodoros,
		Position:  t.Position,
	}
}
