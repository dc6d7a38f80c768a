package dto

// EventsPageLimit - сколько событий запрашивает страница процессов.
const EventsPageLimit = 100

// EventsSetupHint - подсказка, если таблицы events ещё нет.
const EventsSetupHint = "events cədvəli mövcud deyil. Supabase SQL Editor-də migrations faylını run edin."

// EventFilter - фильтры страницы процессов.
type EventFilter struct {
	Type    string `form:"type"`
	ActorID string `form:"actorId"`
}
