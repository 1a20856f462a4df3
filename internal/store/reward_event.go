package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendRewardEvent(ctx context.Context, data RewardEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.RewardEvent.Create().
		SetSequence(seqNum).
		SetDay(data.Day).
		SetStreak(data.Streak).
		SetXpAwarded(data.XPAwarded).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save reward event: %w", err)
	}
	return nil
}
