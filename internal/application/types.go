package application

import "execlauncher/internal/domain"

// MaxResults is the number of results a query returns
const MaxResults = domain.MaxResults
