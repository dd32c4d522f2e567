package transport

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/muhammadheryan/el-rastro/model"
	utilsContext "github.com/muhammadheryan/el-rastro/utils/context"
)

// ListChats handler
// @Summary Chats of the caller
// @Tags Chats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} model.ChatListView
// @Router /api/chats [get]
func (s *RestHandler) ListChats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.ChatApp.ListChats(ctx, utilsContext.GetSession(ctx))
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// StartChat handler
// @Summary Open a chat with a product owner
// @Tags Chats
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body model.StartChatRequest true "Product"
// @Success 200 {object} model.Chat
// @Failure 400 {object} transport.Response
// @Router /api/chats [post]
func (s *RestHandler) StartChat(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.StartChatRequest
	if err := decodeBody(r, &req, true); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ChatApp.StartChat(ctx, utilsContext.GetSession(ctx), req.ProductID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// GetThread handler
// @Summary Messages of a chat
// @Tags Chats
// @Produce json
// @Security BearerAuth
// @Param id path string true "Chat ID"
// @Success 200 {object} model.ChatThreadView
// @Failure 404 {object} transport.Response
// @Router /api/chats/{id} [get]
func (s *RestHandler) GetThread(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	res, err := s.ChatApp.GetThread(ctx, utilsContext.GetSession(ctx), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// SendMessage handler
// @Summary Send a chat message
// @Tags Chats
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Chat ID"
// @Param request body model.SendMessageRequest true "Message"
// @Success 200 {object} model.ThreadMessage
// @Failure 400 {object} transport.Response
// @Router /api/chats/{id}/messages [post]
func (s *RestHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.SendMessageRequest
	if err := decodeBody(r, &req, false); err != nil {
		writeError(w, err)
		return
	}

	res, err := s.ChatApp.SendMessage(ctx, utilsContext.GetSession(ctx), mux.Vars(r)["id"], req.Text)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}
