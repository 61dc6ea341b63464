package tui

import (
	"context"
	"time"

	"github.com/Premdhumal/go-tweet-client/internal/routes"
	"github.com/Premdhumal/go-tweet-client/internal/service"
	"github.com/Premdhumal/go-tweet-client/internal/session"
	"github.com/Premdhumal/go-tweet-client/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenLanding screen = iota
	screenLogin
	screenRegister
	screenFeed
	screenDetail
	screenCompose
	screenEdit
	screenProfile
	screenProfileEdit
	screenNotifications
)

// routeFor maps a screen to the route name the navigation guard knows it by.
func routeFor(s screen) routes.Route {
	switch s {
	case screenLogin:
		return routes.RouteLogin
	case screenRegister:
		return routes.RouteRegister
	case screenFeed:
		return routes.RouteFeed
	case screenDetail:
		return routes.RouteTweetDetail
	case screenCompose:
		return routes.RouteTweetCompose
	case screenEdit:
		return routes.RouteTweetEdit
	case screenProfile:
		return routes.RouteProfile
	case screenProfileEdit:
		return routes.RouteProfileEdit
	case screenNotifications:
		return routes.RouteNotifications
	default:
		return routes.RouteLanding
	}
}

// appModel is the single Bubble Tea model behind the whole client. One screen
// is active at a time; every async result message carries the navigation
// sequence number it was issued under so results that arrive after the user
// has moved on are dropped instead of repainting a dead screen.
type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	session   *session.Store
	buildInfo models.AppBuildInfo

	screen screen
	seq    int

	spin    spinner.Model
	loading bool

	status     string
	overlayErr string

	showBuildInfo bool

	confirming   bool
	confirmTweet models.Tweet

	landingIdx int

	tweets []models.Tweet
	idx    int
	unread int

	detailTweet models.Tweet

	formInputs []textinput.Model
	formFocus  int
	formErr    string
	formErrs   map[string]string
	submitting bool

	composeArea  textarea.Model
	photoInput   textinput.Model
	composeFocus int
	removePhoto  bool
	editTweet    models.Tweet
	saving       bool

	profileName   string
	profile       models.Profile
	profileTweets []models.Tweet
	profileIdx    int

	profileInputs []textinput.Model
	profileFocus  int

	feed models.NotificationFeed
	nIdx int
}

func newAppModel(ctx context.Context, services *service.ClientServices, sessionStore *session.Store, buildInfo models.AppBuildInfo) appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return appModel{
		ctx:       ctx,
		services:  services,
		session:   sessionStore,
		buildInfo: buildInfo,
		screen:    screenLanding,
		spin:      s,
		loading:   true,
	}
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.cmdInitSession())
}

// navigate runs the requested screen change through the route guard, bumps
// the sequence number, and returns the entry command for the screen that is
// actually shown.
func (m *appModel) navigate(to screen) tea.Cmd {
	switch routes.Evaluate(routeFor(to), m.session.Current()) {
	case routes.ToLogin:
		m.status = "Sign in to continue"
		to = screenLogin
	case routes.ToFeed:
		to = screenFeed
	}

	m.seq++
	m.screen = to
	m.overlayErr = ""
	m.confirming = false
	m.loading = false

	switch to {
	case screenLogin:
		m.initLoginForm()
		return textinput.Blink
	case screenRegister:
		m.initRegisterForm()
		return textinput.Blink
	case screenFeed:
		m.loading = true
		return tea.Batch(m.spin.Tick, m.cmdLoadFeed(m.seq), m.cmdUnreadCount())
	case screenDetail:
		return m.cmdLoadTweet(m.seq, m.detailTweet.ID)
	case screenCompose:
		m.initComposeForm(models.Tweet{})
		return textarea.Blink
	case screenEdit:
		m.initComposeForm(m.editTweet)
		return textarea.Blink
	case screenProfile:
		m.loading = true
		return tea.Batch(m.spin.Tick, m.cmdLoadProfile(m.seq, m.profileName))
	case screenProfileEdit:
		m.initProfileForm()
		return textinput.Blink
	case screenNotifications:
		m.loading = true
		return tea.Batch(m.spin.Tick, m.cmdLoadNotifications(m.seq))
	}

	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case sessionReadyMsg:
		if msg.err != nil {
			m.status = "Server unreachable, working offline"
		}
		if m.session.Current().Authenticated() {
			return m, m.navigate(screenFeed)
		}
		m.loading = false
		return m, nil

	case sessionRefreshedMsg:
		if !m.session.Current().Authenticated() {
			m.unread = 0
			return m, m.navigate(m.screen)
		}
		return m, nil

	case authDoneMsg:
		return m.onAuthDone(msg)

	case loggedOutMsg:
		m.status = "Signed out"
		m.unread = 0
		return m, m.navigate(screenLanding)

	case feedLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			return m, m.surfaceError(msg.err)
		}
		m.tweets = msg.tweets
		m.clampIdx()
		return m, nil

	case tweetLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		if msg.err != nil {
			return m, m.surfaceError(msg.err)
		}
		m.detailTweet = msg.tweet
		m.applyTweet(msg.tweet)
		return m, nil

	case likeToggledMsg:
		// The entry was flipped optimistically when the key was pressed.
		// The message carries the authoritative version: reconciled counts
		// on success, the untouched original on failure.
		m.applyTweet(msg.tweet)
		if msg.err != nil {
			return m, m.surfaceError(msg.err)
		}
		return m, nil

	case tweetSavedMsg:
		return m.onTweetSaved(msg)

	case tweetDeletedMsg:
		return m.onTweetDeleted(msg)

	case notificationsLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			return m, m.surfaceError(msg.err)
		}
		m.feed = msg.feed
		m.unread = msg.feed.UnreadCount
		if m.nIdx >= len(m.feed.Notifications) {
			m.nIdx = 0
		}
		return m, nil

	case markedReadMsg:
		if msg.err != nil {
			return m, m.surfaceError(msg.err)
		}
		for i := range m.feed.Notifications {
			m.feed.Notifications[i].IsRead = true
		}
		m.feed.UnreadCount = 0
		m.unread = 0
		m.status = "All notifications read"
		return m, clearStatusLater()

	case unreadCountMsg:
		m.unread = msg.count
		return m, nil

	case profileLoadedMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			return m, m.surfaceError(msg.err)
		}
		m.profile = msg.profile
		m.profileTweets = msg.tweets
		if m.profileIdx >= len(m.profileTweets) {
			m.profileIdx = 0
		}
		return m, nil

	case profileSavedMsg:
		return m.onProfileSaved(msg)
	}

	keyMsg, isKey := msg.(tea.KeyMsg)
	if isKey && keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.overlayErr != "" {
		if isKey && (key.Matches(keyMsg, keys.enter) || key.Matches(keyMsg, keys.esc)) {
			m.overlayErr = ""
		}
		return m, nil
	}

	if m.showBuildInfo {
		if isKey && (key.Matches(keyMsg, keys.esc) || key.Matches(keyMsg, keys.buildInfo)) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if m.confirming {
		return m.updateConfirm(msg)
	}

	switch m.screen {
	case screenLanding:
		return m.updateLanding(msg)
	case screenLogin:
		return m.updateLogin(msg)
	case screenRegister:
		return m.updateRegister(msg)
	case screenFeed:
		return m.updateFeed(msg)
	case screenDetail:
		return m.updateDetail(msg)
	case screenCompose, screenEdit:
		return m.updateCompose(msg)
	case screenProfile:
		return m.updateProfile(msg)
	case screenProfileEdit:
		return m.updateProfileEdit(msg)
	case screenNotifications:
		return m.updateNotifications(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.overlayErr != "" {
		return appStyle.Render(renderErrorOverlay(m.overlayErr))
	}
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}
	if m.confirming {
		return appStyle.Render(renderConfirm(m.confirmTweet))
	}

	var page string
	switch m.screen {
	case screenLanding:
		page = m.viewLanding()
	case screenLogin:
		page = m.viewLogin()
	case screenRegister:
		page = m.viewRegister()
	case screenFeed:
		page = m.viewFeed()
	case screenDetail:
		page = m.viewDetail()
	case screenCompose, screenEdit:
		page = m.viewCompose()
	case screenProfile:
		page = m.viewProfile()
	case screenProfileEdit:
		page = m.viewProfileEdit()
	case screenNotifications:
		page = m.viewNotifications()
	}

	return appStyle.Render(page)
}

// applyTweet replaces every copy of the tweet the model holds: the feed
// entry, the profile timeline entry, and the detail view.
func (m *appModel) applyTweet(t models.Tweet) {
	for i := range m.tweets {
		if m.tweets[i].ID == t.ID {
			m.tweets[i] = t
		}
	}
	for i := range m.profileTweets {
		if m.profileTweets[i].ID == t.ID {
			m.profileTweets[i] = t
		}
	}
	if m.detailTweet.ID == t.ID {
		m.detailTweet = t
	}
}

func (m *appModel) removeTweet(id int64) {
	m.tweets = deleteByID(m.tweets, id)

	before := len(m.profileTweets)
	m.profileTweets = deleteByID(m.profileTweets, id)
	if len(m.profileTweets) < before && m.profile.TweetCount > 0 {
		m.profile.TweetCount--
	}

	m.clampIdx()
	if m.profileIdx >= len(m.profileTweets) {
		m.profileIdx = 0
	}
}

func deleteByID(tweets []models.Tweet, id int64) []models.Tweet {
	out := tweets[:0]
	for _, t := range tweets {
		if t.ID != id {
			out = append(out, t)
		}
	}
	return out
}

func (m *appModel) clampIdx() {
	if m.idx >= len(m.tweets) {
		m.idx = len(m.tweets) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

func (m appModel) currentTweet() (models.Tweet, bool) {
	if len(m.tweets) == 0 || m.idx < 0 || m.idx >= len(m.tweets) {
		return models.Tweet{}, false
	}
	return m.tweets[m.idx], true
}

// toggleLike flips the given feed entry in place for instant feedback and
// dispatches the server call against the pre-flip copy. The service resolves
// the authoritative version and likeToggledMsg overwrites the entry with it.
func (m *appModel) toggleLike(t models.Tweet) tea.Cmd {
	if !m.session.Current().Authenticated() {
		return m.navigate(screenLogin)
	}

	flipped := t
	if flipped.IsLiked {
		flipped.IsLiked = false
		flipped.LikeCount--
	} else {
		flipped.IsLiked = true
		flipped.LikeCount++
	}
	m.applyTweet(flipped)

	return m.cmdToggleLike(t)
}

func (m *appModel) startDelete(t models.Tweet) {
	m.confirming = true
	m.confirmTweet = t
}

func (m appModel) updateConfirm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.yes):
		m.confirming = false
		return m, m.cmdDelete(m.confirmTweet)
	case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
		m.confirming = false
	}
	return m, nil
}

func (m appModel) onTweetDeleted(msg tweetDeletedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		return m, m.surfaceError(msg.err)
	}

	m.removeTweet(msg.id)
	m.status = "Tweet deleted"
	if m.screen == screenDetail {
		return m, tea.Batch(m.navigate(screenFeed), clearStatusLater())
	}
	return m, clearStatusLater()
}

func clearStatusLater() tea.Cmd {
	return tea.Tick(3*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
