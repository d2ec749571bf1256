package session

const (
	bootstrapSessionTable = `
		CREATE TABLE IF NOT EXISTS session (
			id                 INTEGER PRIMARY KEY CHECK (id = 1),
			user_id            INTEGER NOT NULL,
			username           TEXT    NOT NULL,
			token              TEXT    NOT NULL,
			profile_image_path TEXT    NOT NULL DEFAULT '',
			at                 TIMESTAMP NOT NULL
		);`

	saveSession = `
		INSERT INTO session (id, user_id, username, token, profile_image_path, at)
		VALUES (1, $1, $2, $3, $4, $5)
		ON CONFLICT (id) DO UPDATE SET
			user_id            = excluded.user_id,
			username           = excluded.username,
			token              = excluded.token,
			profile_image_path = excluded.profile_image_path,
			at                 = excluded.at;`

	restoreSession = `
		SELECT user_id, username, token, profile_image_path, at
		FROM session
		WHERE id = 1;`

	clearSession = `DELETE FROM session WHERE id = 1;`
)
