package achievements

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/strideapp/stride-api/internal/models"
	"github.com/strideapp/stride-api/internal/trophy"
)

// Store is the persisted achievement set the reconciler writes to. The
// reconciler is the only writer of achievement rows in normal operation.
type Store interface {
	FetchAll(ctx context.Context, userID uint) ([]models.Achievement, error)
	DeleteAll(ctx context.Context, userID uint) error
	Record(ctx context.Context, a *models.Achievement) error
}

// Outcome reports what a reconciliation pass did. NewlyEarned lists the
// variants that were entirely absent before the pass; it exists for
// announcement purposes only, persistence is always the full replacement.
type Outcome struct {
	Changed     bool
	NewlyEarned []trophy.Type
}

// Reconciler replaces the persisted achievement set with a freshly
// computed result whenever the two differ.
type Reconciler struct {
	store Store
}

func NewReconciler(store Store) *Reconciler {
	return &Reconciler{store: store}
}

// Reconcile compares res against the persisted rows as unordered sets of
// (type, day). On a difference it deletes every existing row and
// re-inserts the fresh result; on equality it writes nothing.
//
// A failed fetch aborts the pass with the persisted rows intact — the
// reconciler cannot safely replace what it could not read. Individual
// rows with an unknown tag or missing date are dropped from the
// comparison instead of failing the pass. Write failures are logged and
// left for the next pass to heal; delete-all-then-reinsert is idempotent,
// so a partial replacement converges once a later pass succeeds.
func (r *Reconciler) Reconcile(ctx context.Context, userID uint, res Result) (Outcome, error) {
	rows, err := r.store.FetchAll(ctx, userID)
	if err != nil {
		return Outcome{}, fmt.Errorf("fetch persisted achievements: %w", err)
	}

	existing := make(map[recordKey]struct{}, len(rows))
	existingTypes := make(map[trophy.Type]struct{}, len(rows))
	for _, row := range rows {
		typ := trophy.Type(row.Tag)
		if !typ.Valid() || row.EarnedOn.IsZero() {
			log.Printf("achievements: dropping malformed row %d (tag=%d)", row.ID, row.Tag)
			continue
		}
		existing[Record{Type: typ, Day: row.EarnedOn}.key()] = struct{}{}
		existingTypes[typ] = struct{}{}
	}

	fresh := res.set()
	if setsEqual(existing, fresh) {
		return Outcome{}, nil
	}

	var newly []trophy.Type
	for _, typ := range trophy.All {
		if _, had := existingTypes[typ]; had {
			continue
		}
		if _, has := res.DatesByType[typ]; has {
			newly = append(newly, typ)
		}
	}

	if err := r.store.DeleteAll(ctx, userID); err != nil {
		return Outcome{}, fmt.Errorf("delete persisted achievements: %w", err)
	}

	// Rows sharing a calendar day get ascending minute offsets on their
	// order key so storage never holds two rows with the same timestamp.
	// The offset is storage-level disambiguation, not earn-time.
	perDay := map[string]int{}
	for _, rec := range res.Records {
		n := perDay[dayKey(rec.Day)]
		perDay[dayKey(rec.Day)]++

		row := &models.Achievement{
			UserID:   userID,
			Tag:      int(rec.Type),
			EarnedOn: rec.Day,
			OrderKey: rec.Day.Add(time.Duration(n) * time.Minute),
		}
		if err := r.store.Record(ctx, row); err != nil {
			log.Printf("achievements: failed to record %s for user %d: %v", rec.Type, userID, err)
		}
	}

	return Outcome{Changed: true, NewlyEarned: newly}, nil
}

func setsEqual(a, b map[recordKey]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for key := range a {
		if _, ok := b[key]; !ok {
			return false
		}
	}
	return true
}
