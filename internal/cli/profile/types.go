package profile

import pkgprofile "github.com/pirakansa/wpproject/pkg/profile"

type Profile = pkgprofile.Profile
type Condition = pkgprofile.Condition

const DefaultFileName = pkgprofile.DefaultFileName
