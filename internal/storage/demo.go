package storage

import "github.com/nikbrunner/drill/internal/model"

// DemoQuestions returns the built-in sample deck used when no deck file exists.
func DemoQuestions() []model.Question {
	return []model.Question{
		{ID: 1, Category: "Basics", Question: "What is React?", Answer: "A JS library for building UIs."},
		{ID: 2, Category: "Hooks", Question: "What is useEffect?", Answer: "A hook for side effects."},
		{ID: 3, Category: "Components", Question: "Difference between Class and Functional components?", Answer: "Class uses this.state, Func uses hooks."},
		{ID: 501, Category: "System Design", Question: "Design an Infinite Scroll feed.", Answer: "Use Virtualization (Windowing) and DOM recycling."},
		{ID: 502, Category: "System Design", Question: "Architect a Real-Time Chat App.", Answer: "Use WebSockets, Optimistic UI, and IndexedDB."},
	}
}
