package store

import "github.com/pawplanet/pawplanet-go/client"

// Reducers implement the optimistic mutations the UI applies before the
// backend confirms. Each is its own inverse, so applying one twice
// restores the original state, and counters never go below zero.

// TogglePostLike flips IsLiked and adjusts the like count.
func TogglePostLike(p client.Post) client.Post {
	if p.IsLiked {
		p.IsLiked = false
		if p.Likes > 0 {
			p.Likes--
		}
	} else {
		p.IsLiked = true
		p.Likes++
	}
	return p
}

// TogglePostBookmark flips IsBookmarked.
func TogglePostBookmark(p client.Post) client.Post {
	p.IsBookmarked = !p.IsBookmarked
	return p
}

// SetLikeState reconciles a post with the backend's answer to a like
// toggle, overriding whatever the optimistic reducer guessed.
func SetLikeState(resp *client.LikeResponse) func(client.Post) client.Post {
	return func(p client.Post) client.Post {
		p.Likes = resp.Likes
		p.IsLiked = resp.IsLiked
		return p
	}
}

// ToggleFollow adds or removes followerID on the user's follower list.
func ToggleFollow(u client.User, followerID string) client.User {
	for i, id := range u.Followers {
		if id == followerID {
			u.Followers = append(append([]string(nil), u.Followers[:i]...), u.Followers[i+1:]...)
			return u
		}
	}
	u.Followers = append(append([]string(nil), u.Followers...), followerID)
	return u
}

// BumpViews increments the view counter.
func BumpViews(p client.Post) client.Post {
	p.Views++
	return p
}
