package store

import (
	"context"
	"fmt"

	"github.com/ankur/codedrill/ent"
	"github.com/ankur/codedrill/ent/usersettings"
)

type settingsRepo struct {
	client *ent.Client
}

// Load returns the learner's preferences. A missing row is not an error:
// the scheduler treats it as "no preferences declared".
func (r *settingsRepo) Load(ctx context.Context) (*SettingsData, error) {
	row, err := r.client.UserSettings.Query().
		Where(usersettings.SingletonID(singletonID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return &SettingsData{}, nil
		}
		return nil, fmt.Errorf("query user settings: %w", err)
	}
	return &SettingsData{
		PreferredTopics: row.PreferredTopics,
		TierOverride:    row.TierOverride,
	}, nil
}
