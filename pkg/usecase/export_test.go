package usecase

// FilterAll exposes the match-everything filter value for tests
const FilterAll = filterAll
