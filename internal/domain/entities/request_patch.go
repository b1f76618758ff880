package entities

import "time"

// RequestPatch is a partial update for a ServiceRequest. Nil fields are left
// untouched; set fields overwrite. AppendImages appends in call order rather
// than replacing. Two patches with disjoint field sets therefore compose;
// on overlap the last writer wins.
//
// Backends always refresh UpdatedAt when applying a patch and never touch
// CreatedAt.
type RequestPatch struct {
	Status         *RequestStatus
	InstallerID    *string
	InstallerName  *string
	TechnicalNotes *string
	Notes          *string
	Priority       *RequestPriority

	StartedAt   *time.Time
	PausedAt    *time.Time
	CompletedAt *time.Time
	ConfirmedAt *time.Time
	CancelledAt *time.Time

	// ClearPausedAt resets PausedAt to nil (resume). Wins over PausedAt.
	ClearPausedAt bool

	AppendImages []RequestImage
}

// Apply merges p into req in place.
func (p RequestPatch) Apply(req *ServiceRequest) {
	if p.Status != nil {
		req.Status = *p.Status
	}
	if p.InstallerID != nil {
		req.InstallerID = *p.InstallerID
	}
	if p.InstallerName != nil {
		req.InstallerName = *p.InstallerName
	}
	if p.TechnicalNotes != nil {
		req.TechnicalNotes = *p.TechnicalNotes
	}
	if p.Notes != nil {
		req.Notes = *p.Notes
	}
	if p.Priority != nil {
		req.Priority = *p.Priority
	}
	if p.StartedAt != nil {
		req.StartedAt = p.StartedAt
	}
	if p.PausedAt != nil {
		req.PausedAt = p.PausedAt
	}
	if p.ClearPausedAt {
		req.PausedAt = nil
	}
	if p.CompletedAt != nil {
		req.CompletedAt = p.CompletedAt
	}
	if p.ConfirmedAt != nil {
		req.ConfirmedAt = p.ConfirmedAt
	}
	if p.CancelledAt != nil {
		req.CancelledAt = p.CancelledAt
	}
	if len(p.AppendImages) > 0 {
		req.Images = append(req.Images, p.AppendImages...)
	}
}
