package metrics

// Metrics is the instrumentation surface used by services and middleware.
type Metrics interface {
	IncActionLogged(action string)
	IncBoxScoreUpdate(action string, known bool)
	IncGameSettled(tie bool)
	ObserveHTTPRequest(method, route string, status int, seconds float64)
}

// Nop discards every observation.
type Nop struct{}

var _ Metrics = Nop{}

func (Nop) IncActionLogged(string)                          {}
func (Nop) IncBoxScoreUpdate(string, bool)                  {}
func (Nop) IncGameSettled(bool)                             {}
func (Nop) ObserveHTTPRequest(string, string, int, float64) {}
