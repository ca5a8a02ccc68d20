package timetable

// Package timetable builds the full day plan for a track day: briefing
// and inspection blocks, capacity-packed morning and afternoon session
// rounds, paddock breaks and the lunch break. Lunch is constrained to
// start no later than 14:00 wall clock.
