package handler

var WriteJSON = writeJSON
