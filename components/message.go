package components

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"io"
	"net/http"

	cohere "github.com/cohere-ai/cohere-go/v2"
	"github.com/gabriel-vasile/mimetype"
	anthropic "github.com/liushuangls/go-anthropic/v2"
	"github.com/rs/xid"
	openai "github.com/sashabaranov/go-openai"

	"github.com/bububa/react-agents/schema"
)

// NewTurnID returns a new turn ID.
func NewTurnID() string {
	return xid.New().String()
}

// MessageRole is the role of the message sender (e.g., 'user', 'system', 'tool')
type MessageRole = string

const (
	SystemRole    MessageRole = "system"
	UserRole      MessageRole = "user"
	AssistantRole MessageRole = "assistant"
	ToolRole      MessageRole = "tool"
)

// Message represents one role-tagged entry in a conversation's history.
// Ordering is chronological and significant: history is replayed verbatim
// as context on the next model call.
type Message struct {
	content schema.Schema
	role    MessageRole
	// turnID is the unique identifier of the turn this message belongs to.
	turnID string
}

// NewMessage returns a new Message
func NewMessage(role MessageRole, content schema.Schema) *Message {
	return &Message{
		role:    role,
		content: content,
	}
}

// SetTurnID set message turnID
func (m *Message) SetTurnID(turnID string) *Message {
	m.turnID = turnID
	return m
}

// Role returns message role
func (m Message) Role() MessageRole {
	return m.role
}

// Content returns message content
func (m Message) Content() schema.Schema {
	return m.content
}

// StringifiedContent returns the message content rendered for a prompt.
func (m Message) StringifiedContent() string {
	return schema.Stringify(m.content)
}

// Attachement returns message attachement
func (m Message) Attachement() *schema.Attachement {
	if m.content == nil {
		return nil
	}
	return m.content.Attachement()
}

// TurnID returns message turnID
func (m Message) TurnID() string {
	return m.turnID
}

type messageWire struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
	TurnID  string      `json:"turn_id,omitempty"`
}

func (m Message) MarshalJSON() ([]byte, error) {
	return json.Marshal(messageWire{
		Role:    m.role,
		Content: schema.Stringify(m.content),
		TurnID:  m.turnID,
	})
}

func (m *Message) UnmarshalJSON(bs []byte) error {
	var wire messageWire
	if err := json.Unmarshal(bs, &wire); err != nil {
		return err
	}
	m.role = wire.Role
	m.content = schema.String(wire.Content)
	m.turnID = wire.TurnID
	return nil
}

// ToOpenAI convert message to openai ChatCompletionMessage
func (m Message) ToOpenAI(dist *openai.ChatCompletionMessage) {
	dist.Role = m.role
	if attachement := m.Attachement(); attachement != nil && len(attachement.ImageURLs) > 0 {
		dist.MultiContent = make([]openai.ChatMessagePart, 0, len(attachement.ImageURLs)+1)
		dist.MultiContent = append(dist.MultiContent, openai.ChatMessagePart{
			Type: openai.ChatMessagePartTypeText,
			Text: schema.Stringify(m.content),
		})
		for _, imageURL := range attachement.ImageURLs {
			dist.MultiContent = append(dist.MultiContent, openai.ChatMessagePart{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL: imageURL,
				},
			})
		}
		return
	}
	dist.Content = schema.Stringify(m.content)
}

// ToAnthropic convert message to anthropic Message
func (m Message) ToAnthropic(dist *anthropic.Message) {
	dist.Role = anthropic.ChatRole(m.role)
	attachement := m.Attachement()
	if attachement == nil || (len(attachement.ImageURLs) == 0 && len(attachement.Files) == 0) {
		dist.Content = []anthropic.MessageContent{anthropic.NewTextMessageContent(schema.Stringify(m.content))}
		return
	}
	images := getImages(attachement.ImageURLs)
	dist.Content = make([]anthropic.MessageContent, 0, len(images)+len(attachement.Files)+1)
	dist.Content = append(dist.Content, anthropic.NewTextMessageContent(schema.Stringify(m.content)))
	buf := new(bytes.Buffer)
	for _, img := range images {
		buf.Reset()
		if err := png.Encode(buf, img); err != nil {
			continue
		}
		imgSource := anthropic.MessageContentSource{
			Type:      "base64",
			MediaType: "image/png",
			Data:      base64.StdEncoding.EncodeToString(buf.Bytes()),
		}
		dist.Content = append(dist.Content, anthropic.NewImageMessageContent(imgSource))
	}
	for _, f := range attachement.Files {
		buf.Reset()
		tee := io.TeeReader(f, buf)
		mimeType, err := mimetype.DetectReader(tee)
		if err != nil {
			continue
		}
		if _, err := io.Copy(io.Discard, tee); err != nil {
			continue
		}
		docSource := anthropic.MessageContentSource{
			Type:      "base64",
			MediaType: mimeType.String(),
			Data:      base64.StdEncoding.EncodeToString(buf.Bytes()),
		}
		dist.Content = append(dist.Content, anthropic.NewDocumentMessageContent(docSource))
	}
}

// ToCohere convert message to cohere Message
func (m Message) ToCohere(dist *cohere.Message) {
	switch m.role {
	case SystemRole:
		dist.Role = "SYSTEM"
		dist.System = &cohere.ChatMessage{
			Message: schema.Stringify(m.content),
		}
	case AssistantRole:
		dist.Role = "CHATBOT"
		dist.Chatbot = &cohere.ChatMessage{
			Message: schema.Stringify(m.content),
		}
	default:
		dist.Role = "USER"
		dist.User = &cohere.ChatMessage{
			Message: schema.Stringify(m.content),
		}
	}
}

func getImages(urls []string) []image.Image {
	imgs := make([]image.Image, 0, len(urls))
	for _, link := range urls {
		if img, err := getImage(link); err == nil {
			imgs = append(imgs, img)
		}
	}
	return imgs
}

func getImage(imgURL string) (image.Image, error) {
	resp, err := http.Get(imgURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch image %s: %s", imgURL, resp.Status)
	}
	img, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil, err
	}
	return img, nil
}
