package encoding

import "time"

// ue4Epoch is the reference instant FDateTime ticks count from: the proleptic
// Gregorian calendar's year 1, matching the original game's native date type.
var ue4Epoch = time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)

// ReadDateTime reads a UE4-serialized date time: a signed 64-bit count of
// 100-nanosecond ticks since ue4Epoch.
func ReadDateTime(r *Cursor) (time.Time, error) {
	ticks, err := r.ReadInt64()
	if err != nil {
		return time.Time{}, err
	}

	secs := ticks / 10_000_000
	rem := ticks % 10_000_000

	return time.Unix(ue4Epoch.Unix()+secs, rem*100).UTC(), nil
}

// WriteDateTime writes t as UE4 ticks relative to ue4Epoch. Instants before
// the epoch clamp to zero ticks, matching the original writer's saturating
// behavior on duration underflow.
func WriteDateTime(w *Builder, t time.Time) {
	if t.Before(ue4Epoch) {
		w.WriteInt64(0)

		return
	}
	ticks := (t.Unix()-ue4Epoch.Unix())*10_000_000 + int64(t.Nanosecond())/100
	w.WriteInt64(ticks)
}
