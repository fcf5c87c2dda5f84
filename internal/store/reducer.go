package store

import (
	"fnctl/internal/functionapp"
)

// Reduce applies action to s and returns the next state. Unknown actions
// return s unchanged.
func Reduce(s State, action Action) State {
	switch a := action.(type) {
	case FetchStarted:
		if s.ProjectName != a.Project {
			s = clearApps(s)
			s.ProjectName = a.Project
			s.Status = StatusLoading
		} else if s.Status != StatusLoaded {
			s.Status = StatusLoading
		}
		s.FetchError = nil

	case AppsLoaded:
		s.Entities = make(map[string]functionapp.FunctionApp, len(a.Apps))
		for _, app := range a.Apps {
			s.Entities[app.Name] = app
		}
		s = s.reindex()
		s.ProjectName = a.Project
		s.Status = StatusLoaded
		s.FetchError = nil

	case AppsCleared:
		s = clearApps(s)

	case FetchFailed:
		s.Status = StatusError
		s.FetchError = a.Err

	case AppAdded:
		if _, exists := s.Entities[a.App.Name]; exists {
			return s
		}
		s = s.withEntities()
		s.Entities[a.App.Name] = a.App
		s = s.reindex()

	case AppRemoved:
		if _, exists := s.Entities[a.Name]; !exists {
			return s
		}
		s = s.withEntities()
		delete(s.Entities, a.Name)
		s = s.reindex()

	case AppUpdated:
		current, exists := s.Entities[a.Name]
		if !exists || a.Apply == nil {
			return s
		}
		next := a.Apply(current)
		next.Name = current.Name
		s = s.withEntities()
		s.Entities[a.Name] = next

	case CreateStarted:
		s.Creating = true
		s.CreateError = nil
	case CreateFinished:
		s.Creating = false
	case CreateFailed:
		s.CreateError = a.Err
	case CreateSucceeded:
		s.CreateSuccess = true
	case CreateSuccessConsumed:
		s.CreateSuccess = false

	case DeleteStarted:
		s.Deleting = true
		s.DeleteError = nil
	case DeleteFinished:
		s.Deleting = false
	case DeleteFailed:
		s.Deleting = false
		s.DeleteError = a.Err

	case PublishStarted:
		s.Publishing = true
		s.PublishError = nil
	case PublishFinished:
		s.Publishing = false
	case PublishFailed:
		s.PublishError = a.Err

	case ErrorsCleared:
		s.CreateError = nil
		s.PublishError = nil
	}
	return s
}

func clearApps(s State) State {
	s.Entities = map[string]functionapp.FunctionApp{}
	s.IDs = []string{}
	return s
}
