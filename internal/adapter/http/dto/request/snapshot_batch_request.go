package request

import "strings"

// SnapshotBatchRequest asks for snapshots of several jobs at once.
type SnapshotBatchRequest struct {
	JobIDs []string `json:"job_ids" binding:"required"`
}

// ResolveJobIDs trims whitespace and drops blank entries, keeping order.
func (r SnapshotBatchRequest) ResolveJobIDs() []string {
	out := make([]string, 0, len(r.JobIDs))
	for _, id := range r.JobIDs {
		if v := strings.TrimSpace(id); v != "" {
			out = append(out, v)
		}
	}
	return out
}
