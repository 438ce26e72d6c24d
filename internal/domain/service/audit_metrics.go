package service

// AuditMetrics counts audit events consumed by the worker.
type AuditMetrics interface {
	ObserveAuditEvent(eventType string, accepted bool)
}

// KnownAuditEvent reports whether eventType is one the service emits.
func KnownAuditEvent(eventType string) bool {
	switch eventType {
	case AuditEventUserLogin, AuditEventCredentialSaved, AuditEventCredentialDeleted:
		return true
	default:
		return false
	}
}
