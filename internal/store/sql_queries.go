package store

const (
	userColumns = `id, username, email, password_hash, display_name, bio, avatar,
    twitter, instagram, youtube, volume, loop_enabled,
    registered_device_id, registered_device_name, device_registered_at, created_at`

	createUser = `INSERT INTO users (id, username, email, password_hash, display_name, bio, avatar,
    twitter, instagram, youtube, volume, loop_enabled,
    registered_device_id, registered_device_name)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
    RETURNING device_registered_at, created_at;`

	createAllowedDevice = `INSERT INTO allowed_devices (user_id, device_id, device_name)
    VALUES ($1, $2, $3)
    ON CONFLICT (user_id, device_id) DO NOTHING;`

	findUserByUsername = `SELECT ` + userColumns + `
    FROM users
    WHERE username = $1;`

	findUserByID = `SELECT ` + userColumns + `
    FROM users
    WHERE id = $1;`

	getAllowedDevices = `SELECT device_id
    FROM allowed_devices
    WHERE user_id = $1
    ORDER BY added_at;`

	searchUsers = `SELECT ` + userColumns + `
    FROM users
    WHERE username ILIKE '%' || $1 || '%' AND id <> $2
    ORDER BY username
    LIMIT 50;`

	createTrack = `INSERT INTO tracks (id, user_id, name, file_name, mime_type, size_bytes)
    VALUES ($1, $2, $3, $4, $5, $6)
    RETURNING added_at;`

	getTracks = `SELECT id, user_id, name, file_name, mime_type, size_bytes, added_at
    FROM tracks
    WHERE user_id = $1
    ORDER BY added_at;`

	getTrack = `SELECT id, user_id, name, file_name, mime_type, size_bytes, added_at
    FROM tracks
    WHERE id = $1 AND user_id = $2;`

	deleteTrack = `DELETE FROM tracks
    WHERE id = $1 AND user_id = $2;`

	insertLike = `INSERT INTO likes (user_id, track_id)
    VALUES ($1, $2)
    ON CONFLICT (user_id, track_id) DO NOTHING;`

	deleteLike = `DELETE FROM likes
    WHERE user_id = $1 AND track_id = $2;`

	getLikedTrackIDs = `SELECT track_id
    FROM likes
    WHERE user_id = $1;`

	createPlaylist = `INSERT INTO playlists (id, user_id, name, description, is_public)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING created_at;`

	getPlaylists = `SELECT id, user_id, name, description, is_public, created_at
    FROM playlists
    WHERE user_id = $1
    ORDER BY created_at;`

	getPlaylistTracks = `SELECT pt.playlist_id, pt.track_id
    FROM playlist_tracks pt
    JOIN playlists p ON p.id = pt.playlist_id
    WHERE p.user_id = $1
    ORDER BY pt.playlist_id, pt.position;`

	addTrackToPlaylist = `INSERT INTO playlist_tracks (playlist_id, track_id, position)
    SELECT $1, $2, COALESCE(MAX(pt.position) + 1, 0)
    FROM playlists p
    LEFT JOIN playlist_tracks pt ON pt.playlist_id = p.id
    WHERE p.id = $1 AND p.user_id = $3
    GROUP BY p.id
    ON CONFLICT (playlist_id, track_id) DO NOTHING;`

	playlistExists = `SELECT EXISTS (SELECT 1 FROM playlists WHERE id = $1 AND user_id = $2);`

	getPublicPlaylists = `SELECT p.id, p.user_id, p.name, p.description, p.is_public, p.created_at, u.username
    FROM playlists p
    JOIN users u ON u.id = p.user_id
    WHERE p.is_public
    ORDER BY p.created_at DESC;`

	getPublicPlaylistTracks = `SELECT pt.playlist_id, pt.track_id
    FROM playlist_tracks pt
    JOIN playlists p ON p.id = pt.playlist_id
    WHERE p.is_public
    ORDER BY pt.playlist_id, pt.position;`

	insertFollow = `INSERT INTO follows (follower_id, followee_id)
    VALUES ($1, $2)
    ON CONFLICT (follower_id, followee_id) DO NOTHING;`

	deleteFollow = `DELETE FROM follows
    WHERE follower_id = $1 AND followee_id = $2;`

	getFollowing = `SELECT followee_id
    FROM follows
    WHERE follower_id = $1;`
)
