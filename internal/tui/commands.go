package tui

import (
	"github.com/Premdhumal/go-tweet-client/models"
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) cmdInitSession() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService

	return func() tea.Msg {
		err := auth.Initialize(ctx)
		return sessionReadyMsg{err: err}
	}
}

// cmdRefreshSession re-probes the server after a request came back
// unauthorized. The store keeps the current snapshot if the probe fails.
func (m appModel) cmdRefreshSession() tea.Cmd {
	ctx := m.ctx
	store := m.session

	return func() tea.Msg {
		_ = store.Refresh(ctx)
		return sessionRefreshedMsg{}
	}
}

func (m appModel) cmdLogin(creds models.Credentials) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService

	return func() tea.Msg {
		user, err := auth.Login(ctx, creds)
		return authDoneMsg{user: user, err: err}
	}
}

func (m appModel) cmdRegister(reg models.Registration) tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService

	return func() tea.Msg {
		user, err := auth.Register(ctx, reg)
		return authDoneMsg{user: user, err: err}
	}
}

func (m appModel) cmdLogout() tea.Cmd {
	ctx := m.ctx
	auth := m.services.AuthService

	return func() tea.Msg {
		err := auth.Logout(ctx)
		return loggedOutMsg{err: err}
	}
}

func (m appModel) cmdLoadFeed(seq int) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TweetService

	return func() tea.Msg {
		tweets, err := svc.Feed(ctx)
		return feedLoadedMsg{seq: seq, tweets: tweets, err: err}
	}
}

func (m appModel) cmdLoadTweet(seq int, id int64) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TweetService

	return func() tea.Msg {
		tweet, err := svc.Get(ctx, id)
		return tweetLoadedMsg{seq: seq, tweet: tweet, err: err}
	}
}

func (m appModel) cmdToggleLike(tweet models.Tweet) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TweetService

	return func() tea.Msg {
		err := svc.ToggleLike(ctx, &tweet)
		return likeToggledMsg{tweet: tweet, err: err}
	}
}

func (m appModel) cmdCompose(draft models.TweetDraft) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TweetService

	return func() tea.Msg {
		tweet, err := svc.Compose(ctx, draft)
		return tweetSavedMsg{tweet: tweet, err: err}
	}
}

func (m appModel) cmdEdit(tweet models.Tweet, draft models.TweetDraft) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TweetService

	return func() tea.Msg {
		saved, err := svc.Edit(ctx, tweet, draft)
		return tweetSavedMsg{tweet: saved, err: err}
	}
}

func (m appModel) cmdDelete(tweet models.Tweet) tea.Cmd {
	ctx := m.ctx
	svc := m.services.TweetService

	return func() tea.Msg {
		err := svc.Delete(ctx, tweet)
		return tweetDeletedMsg{id: tweet.ID, err: err}
	}
}

func (m appModel) cmdLoadNotifications(seq int) tea.Cmd {
	ctx := m.ctx
	svc := m.services.NotificationService

	return func() tea.Msg {
		feed, err := svc.List(ctx)
		return notificationsLoadedMsg{seq: seq, feed: feed, err: err}
	}
}

func (m appModel) cmdMarkAllRead() tea.Cmd {
	ctx := m.ctx
	svc := m.services.NotificationService

	return func() tea.Msg {
		err := svc.MarkAllRead(ctx)
		return markedReadMsg{err: err}
	}
}

func (m appModel) cmdUnreadCount() tea.Cmd {
	ctx := m.ctx
	svc := m.services.NotificationService

	return func() tea.Msg {
		count, err := svc.UnreadCount(ctx)
		if err != nil {
			return unreadCountMsg{count: 0}
		}
		return unreadCountMsg{count: count}
	}
}

func (m appModel) cmdLoadProfile(seq int, username string) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ProfileService

	return func() tea.Msg {
		profile, err := svc.Get(ctx, username)
		if err != nil {
			return profileLoadedMsg{seq: seq, err: err}
		}
		tweets, err := svc.Tweets(ctx, username)
		return profileLoadedMsg{seq: seq, profile: profile, tweets: tweets, err: err}
	}
}

func (m appModel) cmdSaveProfile(current models.Profile, upd models.ProfileUpdate) tea.Cmd {
	ctx := m.ctx
	svc := m.services.ProfileService

	return func() tea.Msg {
		profile, err := svc.Update(ctx, current, upd)
		return profileSavedMsg{profile: profile, err: err}
	}
}
