// Package llm provides conversational language model clients. It supports
// Gemini, OpenAI and Anthropic, with rate limiting and a Session type that
// keeps the running conversation.
package llm
