package models

// Response is the uniform JSON envelope returned by every API endpoint.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// AuthResponse is returned by the register and login endpoints. On a device
// rejection DeviceUnauthorized is set and AllowedDevice carries the display
// name of the device the account is locked to, so the client can tell the
// user which device to use.
type AuthResponse struct {
	Response
	User *PublicUser `json:"user,omitempty"`

	DeviceUnauthorized bool   `json:"deviceUnauthorized,omitempty"`
	AllowedDevice      string `json:"allowedDevice,omitempty"`
}

// UserResponse wraps a single public user view.
type UserResponse struct {
	Response
	User *PublicUser `json:"user,omitempty"`
}

// TrackResponse wraps a single track's metadata.
type TrackResponse struct {
	Response
	Track *Track `json:"track,omitempty"`
}

// TracksResponse wraps a track listing.
type TracksResponse struct {
	Response
	Tracks []Track `json:"tracks"`
}

// LikeResponse reports the liked state of a track after a toggle.
type LikeResponse struct {
	Response
	Liked bool `json:"liked"`
}

// LikesResponse wraps the caller's liked track ids.
type LikesResponse struct {
	Response
	TrackIDs []string `json:"likedTracks"`
}

// PlaylistResponse wraps a single playlist.
type PlaylistResponse struct {
	Response
	Playlist *Playlist `json:"playlist,omitempty"`
}

// PlaylistsResponse wraps a playlist listing.
type PlaylistsResponse struct {
	Response
	Playlists []Playlist `json:"playlists"`
}

// PublicPlaylistsResponse wraps the browse view of public playlists.
type PublicPlaylistsResponse struct {
	Response
	Playlists []PublicPlaylist `json:"playlists"`
}

// UsersResponse wraps a user search result.
type UsersResponse struct {
	Response
	Users []PublicUser `json:"users"`
}

// DeviceResponse is returned by the fingerprint helper endpoint.
type DeviceResponse struct {
	DeviceID   string `json:"deviceId"`
	DeviceName string `json:"deviceName"`
}
